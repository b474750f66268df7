package app

import (
	"testing"

	"motogarage-api/repositories"
)

func TestCountryChangeResetsCity(t *testing.T) {
	gateway := &fakeGateway{
		shops: makeShops(10, "Germany"),
		citiesByCountry: map[string][]string{
			"Germany": {"Berlin", "Munich"},
			"France":  {"Lyon", "Paris"},
		},
	}

	directory := NewDirectory(gateway)
	directory.Mount()

	directory.SetCountry("Germany")
	directory.SetCity("Berlin")
	if directory.Filters().Country != "Germany" || directory.Filters().City != "Berlin" {
		t.Fatalf("unexpected filters: %+v", directory.Filters())
	}

	directory.SetCountry("France")
	if directory.Filters().City != "" {
		t.Errorf("city filter must reset on country change, got %q", directory.Filters().City)
	}
	if len(gateway.cityCalls) != 2 || gateway.cityCalls[1] != "France" {
		t.Errorf("expected a city-list fetch for France, got %v", gateway.cityCalls)
	}
	if len(directory.Cities()) != 2 || directory.Cities()[0] != "Lyon" {
		t.Errorf("expected French cities, got %v", directory.Cities())
	}

	// Clearing the country clears the list without a fetch.
	directory.SetCountry("")
	if len(gateway.cityCalls) != 2 {
		t.Errorf("no fetch expected for empty country, got %v", gateway.cityCalls)
	}
	if directory.Cities() != nil {
		t.Errorf("expected no cities, got %v", directory.Cities())
	}
}

func TestFilterChangeRequeriesFromPageZero(t *testing.T) {
	gateway := &fakeGateway{shops: makeShops(repositories.ShopPageSize*2, "Germany")}

	directory := NewDirectory(gateway)
	directory.Mount()
	directory.LoadMore()

	gateway.listCalls = nil
	directory.SetSearch("moto")

	if len(gateway.listCalls) != 1 {
		t.Fatalf("expected one query, got %d", len(gateway.listCalls))
	}
	if gateway.listCalls[0].page != 0 {
		t.Errorf("filter change must restart at page 0, got %d", gateway.listCalls[0].page)
	}
	if gateway.listCalls[0].filters.Search != "moto" {
		t.Errorf("expected search filter, got %+v", gateway.listCalls[0].filters)
	}
}

func TestLoadMoreAppendsUntilExhausted(t *testing.T) {
	const total = repositories.ShopPageSize*2 + 17
	gateway := &fakeGateway{shops: makeShops(total, "Germany")}

	directory := NewDirectory(gateway)
	directory.Mount()

	// ceil(N/P)-1 clicks drain the result set.
	clicks := 0
	for directory.HasMore() {
		directory.LoadMore()
		clicks++
		if clicks > 10 {
			t.Fatal("load more never exhausted")
		}
	}

	if clicks != 2 {
		t.Errorf("expected 2 load-more rounds, got %d", clicks)
	}
	if len(directory.Shops()) != total {
		t.Errorf("expected %d shops displayed, got %d", total, len(directory.Shops()))
	}
	if directory.HasMore() {
		t.Error("further loading must be disabled")
	}
}

func TestExactPageBoundaryLeavesHasMore(t *testing.T) {
	// N divisible by the page size: the last full page still advertises
	// more, and the following load returns nothing.
	gateway := &fakeGateway{shops: makeShops(repositories.ShopPageSize, "Germany")}

	directory := NewDirectory(gateway)
	directory.Mount()
	if !directory.HasMore() {
		t.Fatal("full first page should advertise more")
	}

	directory.LoadMore()
	if len(directory.Shops()) != repositories.ShopPageSize {
		t.Errorf("expected %d shops, got %d", repositories.ShopPageSize, len(directory.Shops()))
	}
	if directory.HasMore() {
		t.Error("empty page must disable loading")
	}
}

func TestStatsFetchedOnceAtMount(t *testing.T) {
	gateway := &fakeGateway{shops: makeShops(5, "Germany")}

	directory := NewDirectory(gateway)
	directory.Mount()
	directory.SetSearch("berlin")
	directory.SetCountry("Germany")

	if gateway.statsCalls != 1 {
		t.Errorf("stats must be fetched once at mount, got %d calls", gateway.statsCalls)
	}
	if directory.Stats() == nil || directory.Stats().TotalShops != 5 {
		t.Errorf("unexpected stats: %+v", directory.Stats())
	}
}

func TestListingErrorKeepsPreviousResults(t *testing.T) {
	gateway := &fakeGateway{shops: makeShops(5, "Germany")}

	directory := NewDirectory(gateway)
	directory.Mount()
	if len(directory.Shops()) != 5 {
		t.Fatalf("expected 5 shops, got %d", len(directory.Shops()))
	}

	gateway.failListing = true
	directory.SetSearch("x")
	if directory.LastError() == "" {
		t.Error("expected a surfaced error")
	}
	if len(directory.Shops()) != 5 {
		t.Errorf("previous results must survive a failed query, got %d", len(directory.Shops()))
	}
}
