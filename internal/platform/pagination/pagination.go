// Package pagination coerces page parameters and builds the page envelope
// shared by every listing endpoint.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxPage bounds the page number so Offset cannot overflow. Any page past
// the data is an empty last page anyway.
const MaxPage = math.MaxInt32

// Limits holds the per-resource page size policy.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

var (
	PostLimits         = Limits{DefaultSize: 10, MaxSize: 50}
	CommentLimits      = Limits{DefaultSize: 10, MaxSize: 50}
	NotificationLimits = Limits{DefaultSize: 20, MaxSize: 50}
	BellLimits         = Limits{DefaultSize: 10, MaxSize: 50}
	LikeLimits         = Limits{DefaultSize: 12, MaxSize: 50}
	UserLimits         = Limits{DefaultSize: 20, MaxSize: 50}
)

// Request is a coerced page request. Page is always in [1, MaxPage] and Size is
// always within [1, MaxSize] of the limits it was built with.
type Request struct {
	Page int
	Size int
}

// Parse coerces raw query values. Unparseable or non-positive pages become 1
// and pages too large for an int become MaxPage. An absent or unparseable
// size falls back to the default; any size is then clamped into [1, MaxSize].
func Parse(rawPage, rawSize string, limits Limits) Request {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil {
		page = 1
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(rawPage), "-") {
			page = MaxPage
		}
	}
	size, err := strconv.Atoi(strings.TrimSpace(rawSize))
	if err != nil {
		size = limits.DefaultSize
	}
	return New(page, size, limits)
}

// New clamps already-parsed values.
func New(page, size int, limits Limits) Request {
	page = max(1, min(page, MaxPage))
	maxSize := limits.MaxSize
	if maxSize < 1 {
		maxSize = 1
	}
	if size < 1 {
		size = 1
	}
	if size > maxSize {
		size = maxSize
	}
	return Request{Page: page, Size: size}
}

func (r Request) Offset() int { return (r.Page - 1) * r.Size }

func (r Request) Limit() int { return r.Size }

// Range returns the inclusive [from, to] row range of the page.
func (r Request) Range() (from, to int) {
	from = r.Offset()
	return from, from + r.Size - 1
}

// Envelope is the page shape returned by every listing.
type Envelope[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	HasMore     bool `json:"hasMore"`
}

// NewEnvelope computes totalPages and hasMore for items fetched with req.
func NewEnvelope[T any](items []T, total int, req Request) Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return Envelope[T]{
		Items:       items,
		CurrentPage: req.Page,
		TotalPages:  TotalPages(total, req.Size),
		Total:       total,
		HasMore:     req.Offset()+len(items) < total,
	}
}

// TotalPages is max(1, ceil(total/size)).
func TotalPages(total, size int) int {
	if size < 1 || total <= 0 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Map converts the items of an envelope, keeping its metadata.
func Map[T, U any](e Envelope[T], fn func(T) U) Envelope[U] {
	out := make([]U, len(e.Items))
	for i, item := range e.Items {
		out[i] = fn(item)
	}
	return Envelope[U]{
		Items:       out,
		CurrentPage: e.CurrentPage,
		TotalPages:  e.TotalPages,
		Total:       e.Total,
		HasMore:     e.HasMore,
	}
}
