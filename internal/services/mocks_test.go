package services

import (
	"context"
	"errors"

	dbm "wanderplan/internal/models/db_models"
)

type fakeCompletionClient struct {
	reply string
	err   error
	// last prompt handed to Complete, for assertions.
	prompt string
}

func (f *fakeCompletionClient) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

type fakeTripRepo struct {
	trips       []dbm.Trip
	tripCount   int64
	suggestions map[string][]string
	countErr    error
}

func (f *fakeTripRepo) CreateTrip(_ context.Context, trip *dbm.Trip) error {
	f.trips = append(f.trips, *trip)
	return nil
}

func (f *fakeTripRepo) GetTripsByUserId(_ context.Context, _ string, _ int, _ int) ([]dbm.Trip, error) {
	return f.trips, nil
}

func (f *fakeTripRepo) GetTripById(_ context.Context, _ string) (*dbm.Trip, error) {
	if len(f.trips) == 0 {
		return nil, errors.New("not found")
	}
	return &f.trips[0], nil
}

func (f *fakeTripRepo) GetTripByShareId(_ context.Context, _ string) (*dbm.Trip, error) {
	if len(f.trips) == 0 {
		return nil, errors.New("not found")
	}
	return &f.trips[0], nil
}

func (f *fakeTripRepo) UpdateSuggestions(_ context.Context, tripId string, suggestions []string) error {
	if f.suggestions == nil {
		f.suggestions = map[string][]string{}
	}
	f.suggestions[tripId] = suggestions
	return nil
}

func (f *fakeTripRepo) DeleteTrip(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeTripRepo) CountTripsCreatedSince(_ context.Context, _ string, _ int64) (int64, error) {
	return f.tripCount, f.countErr
}

type fakeSubscriptionRepo struct {
	sub *dbm.Subscription
	err error
}

func (f *fakeSubscriptionRepo) GetActiveSubscription(_ context.Context, _ string) (*dbm.Subscription, error) {
	return f.sub, f.err
}

func (f *fakeSubscriptionRepo) UpsertSubscription(_ context.Context, sub *dbm.Subscription) error {
	f.sub = sub
	return nil
}

type fakeItineraryRepo struct {
	stored map[string][]dbm.ItineraryDayItem
}

func (f *fakeItineraryRepo) ReplaceItinerary(_ context.Context, tripId string, days []dbm.ItineraryDayItem) error {
	if f.stored == nil {
		f.stored = map[string][]dbm.ItineraryDayItem{}
	}
	f.stored[tripId] = days
	return nil
}
