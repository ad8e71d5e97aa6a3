package usecase

import (
	"context"
	"sort"
	"sync"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/logger"
)

// QuerySnapshot is a consistent copy of the derived query state, safe to
// hand to handlers and stream subscribers.
type QuerySnapshot struct {
	Term           string           `json:"term"`
	Category       string           `json:"category"`
	Loading        bool             `json:"loading"`
	UsedFallback   bool             `json:"used_fallback"`
	Facets         FacetSummary     `json:"facets"`
	SelectedBrands []string         `json:"selected_brands"`
	Condition      string           `json:"condition"`
	MinPrice       *float64         `json:"min_price,omitempty"`
	MaxPrice       *float64         `json:"max_price,omitempty"`
	Sort           string           `json:"sort"`
	Page           int              `json:"page"`
	PageSize       int              `json:"page_size"`
	TotalPages     int              `json:"total_pages"`
	TotalResults   int              `json:"total_results"`
	Products       []entity.Product `json:"products"`
}

// CatalogUseCase is the query orchestrator. It owns the search term, the
// base result set, the selected facets, sort order and current page, and
// recomputes the displayed slice after every action. All mutation flows
// through its methods.
type CatalogUseCase struct {
	provider repository.CatalogProvider
	fallback []entity.Product
	pageSize int

	mu           sync.Mutex
	fetchSeq     uint64
	catalog      []entity.Product // merged working set
	term         string
	category     string
	base         []entity.Product // post term-filter, pre facet-filter
	filters      Filters
	sort         string
	page         int
	displayed    []entity.Product
	totalPages   int
	totalResults int
	facets       FacetSummary
	loading      bool
	usedFallback bool
	listeners    []func(QuerySnapshot)
}

func NewCatalogUseCase(provider repository.CatalogProvider, fallback []entity.Product, pageSize int) *CatalogUseCase {
	return &CatalogUseCase{
		provider:   provider,
		fallback:   fallback,
		pageSize:   pageSize,
		filters:    newFilters(),
		sort:       SortRelevance,
		page:       1,
		displayed:  []entity.Product{},
		totalPages: 1,
		facets:     summarizeFacets(nil),
	}
}

// Subscribe registers a listener invoked with every published snapshot.
// Listeners are expected to be registered during startup.
func (uc *CatalogUseCase) Subscribe(fn func(QuerySnapshot)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, fn)
}

// Search is the search-term entry point: it refreshes the working catalog,
// narrows it by term containment and recomputes everything. Facet
// selections are cleared unless keepFilters is set; the page always resets
// to 1.
func (uc *CatalogUseCase) Search(ctx context.Context, term string, keepFilters bool) QuerySnapshot {
	return uc.enter(ctx, term, "", keepFilters)
}

// Browse is the category entry point; same lifecycle as Search with an
// exact category match instead of term containment.
func (uc *CatalogUseCase) Browse(ctx context.Context, category string, keepFilters bool) QuerySnapshot {
	return uc.enter(ctx, "", category, keepFilters)
}

func (uc *CatalogUseCase) enter(ctx context.Context, term, category string, keepFilters bool) QuerySnapshot {
	uc.mu.Lock()
	uc.fetchSeq++
	seq := uc.fetchSeq
	uc.loading = true
	uc.mu.Unlock()

	// the fetch runs outside the lock; a slow response is discarded below
	// when a newer entry point call has superseded it
	catalog, usedFallback := loadMergedCatalog(ctx, uc.provider, uc.fallback)

	uc.mu.Lock()
	if seq != uc.fetchSeq {
		logger.Debug("discarding stale catalog fetch for term %q", term)
		snap := uc.snapshotLocked()
		uc.mu.Unlock()
		return snap
	}

	uc.catalog = catalog
	uc.usedFallback = usedFallback
	uc.term = term
	uc.category = category

	switch {
	case category != "":
		uc.base = filterByCategory(catalog, category)
	default:
		uc.base = filterByTerm(catalog, term)
	}
	uc.facets = summarizeFacets(uc.base)

	if !keepFilters {
		uc.filters = newFilters()
		uc.sort = SortRelevance
	}
	uc.page = 1
	uc.loading = false
	uc.recompute()

	snap := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.publish(snap)
	return snap
}

// ToggleBrand adds the brand to the selected set, or removes it when
// already selected. The page resets to 1.
func (uc *CatalogUseCase) ToggleBrand(brand string) QuerySnapshot {
	return uc.mutate(func() {
		if uc.filters.Brands[brand] {
			delete(uc.filters.Brands, brand)
		} else {
			uc.filters.Brands[brand] = true
		}
		uc.page = 1
	})
}

// SetCondition selects a condition facet; an empty string clears it.
func (uc *CatalogUseCase) SetCondition(condition string) QuerySnapshot {
	return uc.mutate(func() {
		uc.filters.Condition = condition
		uc.page = 1
	})
}

// SetPriceRange sets the inclusive price bounds; nil clears a bound.
func (uc *CatalogUseCase) SetPriceRange(min, max *float64) QuerySnapshot {
	return uc.mutate(func() {
		uc.filters.MinPrice = min
		uc.filters.MaxPrice = max
		uc.page = 1
	})
}

// SetSort switches the sort order. Unknown orders are ignored.
func (uc *CatalogUseCase) SetSort(order string) QuerySnapshot {
	if !isValidSort(order) {
		return uc.Snapshot()
	}
	return uc.mutate(func() {
		uc.sort = order
		uc.page = 1
	})
}

// GoToPage navigates to page n. Out-of-range and same-page requests are
// silently ignored, leaving the current slice displayed.
func (uc *CatalogUseCase) GoToPage(n int) QuerySnapshot {
	uc.mu.Lock()
	if n == uc.page || n < 1 || n > uc.totalPages {
		snap := uc.snapshotLocked()
		uc.mu.Unlock()
		return snap
	}
	uc.page = n
	uc.recompute()
	snap := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.publish(snap)
	return snap
}

// ClearFilters resets every facet and the sort order to defaults and
// returns to page 1. The base result set is untouched.
func (uc *CatalogUseCase) ClearFilters() QuerySnapshot {
	return uc.mutate(func() {
		uc.filters = newFilters()
		uc.sort = SortRelevance
		uc.page = 1
	})
}

// Snapshot returns the current derived state without mutating anything.
func (uc *CatalogUseCase) Snapshot() QuerySnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

func (uc *CatalogUseCase) mutate(apply func()) QuerySnapshot {
	uc.mu.Lock()
	apply()
	uc.recompute()
	snap := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.publish(snap)
	return snap
}

// recompute derives the displayed slice from (base, filters, sort, page).
// Callers must hold the lock.
func (uc *CatalogUseCase) recompute() {
	filtered := applyFilters(uc.base, uc.filters)
	ordered := sortProducts(filtered, uc.sort)
	uc.totalResults = len(ordered)
	uc.displayed, uc.totalPages = paginate(ordered, uc.page, uc.pageSize)
}

func (uc *CatalogUseCase) snapshotLocked() QuerySnapshot {
	brands := make([]string, 0, len(uc.filters.Brands))
	for brand := range uc.filters.Brands {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return QuerySnapshot{
		Term:           uc.term,
		Category:       uc.category,
		Loading:        uc.loading,
		UsedFallback:   uc.usedFallback,
		Facets:         uc.facets,
		SelectedBrands: brands,
		Condition:      uc.filters.Condition,
		MinPrice:       uc.filters.MinPrice,
		MaxPrice:       uc.filters.MaxPrice,
		Sort:           uc.sort,
		Page:           uc.page,
		PageSize:       uc.pageSize,
		TotalPages:     uc.totalPages,
		TotalResults:   uc.totalResults,
		Products:       append([]entity.Product(nil), uc.displayed...),
	}
}

func (uc *CatalogUseCase) publish(snap QuerySnapshot) {
	uc.mu.Lock()
	var listeners []func(QuerySnapshot)
	listeners = append(listeners, uc.listeners...)
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
