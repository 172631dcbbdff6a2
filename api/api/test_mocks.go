/* test_mocks.go
 * Contains mock structures for testing the API package
 */

package api

import (
	"context"
	"errors"
	"sort"

	"flagbot/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Records keyed by userid + "|" + week
	Records map[string]store.FlagRecord

	// Error injection for testing error paths
	GetFlagRecordError   error
	UpsertFlagRecordError error
	GetWeekRecordsError  error
	GetWeeksRecordsError error
	GetUserRecordsError  error
	GetAllRecordsError   error

	// Upserts stores every record written, in order
	Upserts []store.FlagRecord

	DatabaseName string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal Client interface needed for tests
type mockClient struct{}

func (m *mockClient) Disconnect(context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Records:      make(map[string]store.FlagRecord),
		DatabaseName: "test_flagbot",
	}
}

// SetRecord seeds a record into the mock store
func (m *MockStore) SetRecord(record store.FlagRecord) {
	m.Records[record.UserId+"|"+record.Week] = record
}

// GetFlagRecord returns the seeded record for (userID, week)
func (m *MockStore) GetFlagRecord(userID string, week string) (store.FlagRecord, error) {
	if m.GetFlagRecordError != nil {
		return store.FlagRecord{}, m.GetFlagRecordError
	}
	record, ok := m.Records[userID+"|"+week]
	if !ok {
		return store.FlagRecord{}, mongo.ErrNoDocuments
	}
	return record, nil
}

// UpsertFlagRecord stores the record and logs the write
func (m *MockStore) UpsertFlagRecord(record store.FlagRecord) error {
	if m.UpsertFlagRecordError != nil {
		return m.UpsertFlagRecordError
	}
	if record.UserId == "" || record.Week == "" {
		return errors.New("flag record is missing userid or week")
	}
	m.Records[record.UserId+"|"+record.Week] = record
	m.Upserts = append(m.Upserts, record)
	return nil
}

// GetWeekRecords returns all seeded records for a week
func (m *MockStore) GetWeekRecords(week string) ([]store.FlagRecord, error) {
	if m.GetWeekRecordsError != nil {
		return nil, m.GetWeekRecordsError
	}
	return m.filter(func(r store.FlagRecord) bool { return r.Week == week }), nil
}

// GetWeeksRecords returns all seeded records for a set of weeks
func (m *MockStore) GetWeeksRecords(weeks []string) ([]store.FlagRecord, error) {
	if m.GetWeeksRecordsError != nil {
		return nil, m.GetWeeksRecordsError
	}
	allowed := make(map[string]bool, len(weeks))
	for _, week := range weeks {
		allowed[week] = true
	}
	return m.filter(func(r store.FlagRecord) bool { return allowed[r.Week] }), nil
}

// GetUserRecords returns all seeded records for a user
func (m *MockStore) GetUserRecords(userID string) ([]store.FlagRecord, error) {
	if m.GetUserRecordsError != nil {
		return nil, m.GetUserRecordsError
	}
	return m.filter(func(r store.FlagRecord) bool { return r.UserId == userID }), nil
}

// GetAllRecords returns every seeded record
func (m *MockStore) GetAllRecords() ([]store.FlagRecord, error) {
	if m.GetAllRecordsError != nil {
		return nil, m.GetAllRecordsError
	}
	return m.filter(func(store.FlagRecord) bool { return true }), nil
}

// GetDatabase returns a stub database handle
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

// GetClient returns a stub client handle
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// filter returns records matching the predicate, sorted by week then points
// descending to mirror the real store's query sort
func (m *MockStore) filter(keep func(store.FlagRecord) bool) []store.FlagRecord {
	var results []store.FlagRecord
	for _, record := range m.Records {
		if keep(record) {
			results = append(results, record)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Week != results[j].Week {
			return results[i].Week < results[j].Week
		}
		return results[i].WeeklyPoints > results[j].WeeklyPoints
	})
	return results
}

// Ensure MockStore implements the store Interface
var _ store.Interface = (*MockStore)(nil)
