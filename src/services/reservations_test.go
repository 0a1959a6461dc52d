package services

import (
	"math/rand"
	"testing"
	"time"
	"venise/src/models"
	"venise/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnits struct {
	units map[types.ReservationKind]map[uint]UnitInfo
}

func (f *fakeUnits) GetUnit(kind types.ReservationKind, id uint) (*UnitInfo, error) {
	u, ok := f.units[kind][id]
	if !ok {
		return nil, ErrUnitNotFound
	}
	return &u, nil
}

type fakeStore struct {
	seq             uint
	rows            map[uint]*models.Reservation
	listActiveCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[uint]*models.Reservation{}}
}

func copyRes(r *models.Reservation) *models.Reservation {
	c := *r
	return &c
}

func (f *fakeStore) Get(kind types.ReservationKind, id uint) (*models.Reservation, error) {
	r, ok := f.rows[id]
	if !ok || r.Kind != kind {
		return nil, ErrReservationNotFound
	}
	return copyRes(r), nil
}

func (f *fakeStore) ListActive(kind types.ReservationKind, unitID uint, onDate *time.Time, excludeID uint) ([]models.Reservation, error) {
	f.listActiveCalls++
	var out []models.Reservation
	for _, r := range f.rows {
		if r.Kind != kind || r.UnitID != unitID || r.ID == excludeID {
			continue
		}
		if r.Status == types.RESERVATION_CANCELLED {
			continue
		}
		if onDate != nil && (r.EventDate == nil || !r.EventDate.Equal(*onDate)) {
			continue
		}
		out = append(out, *copyRes(r))
	}
	return out, nil
}

func (f *fakeStore) Save(r *models.Reservation) error {
	if r.ID == 0 {
		f.seq++
		r.ID = f.seq
	}
	f.rows[r.ID] = copyRes(r)
	return nil
}

func (f *fakeStore) Delete(kind types.ReservationKind, id uint) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeStore) Search(kind types.ReservationKind, filters *types.ReservationQueryFilters, userID *uint, adminHotelIDs []uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.rows {
		if r.Kind != kind {
			continue
		}
		if filters != nil && filters.Status != "" && string(r.Status) != filters.Status {
			continue
		}
		out = append(out, *copyRes(r))
	}
	return out, nil
}

func (f *fakeStore) InTx(fn func(ReservationStore) error) error {
	return fn(f)
}

type recordingNotifier struct {
	created, confirmed, cancelled, deleted int
}

func (n *recordingNotifier) ReservationCreated(*models.Reservation)   { n.created++ }
func (n *recordingNotifier) ReservationConfirmed(*models.Reservation) { n.confirmed++ }
func (n *recordingNotifier) ReservationCancelled(*models.Reservation) { n.cancelled++ }
func (n *recordingNotifier) ReservationDeleted(*models.Reservation)   { n.deleted++ }

func newTestService() (*Service, *fakeStore, *recordingNotifier) {
	units := &fakeUnits{units: map[types.ReservationKind]map[uint]UnitInfo{
		types.KIND_ROOM:       {1: {ID: 1, HotelID: 1, Rate: 10000}},
		types.KIND_APARTMENT:  {1: {ID: 1, HotelID: 1, Rate: 25000}},
		types.KIND_EVENT_ROOM: {1: {ID: 1, HotelID: 1, Rate: 50000}},
	}}
	store := newFakeStore()
	notifier := &recordingNotifier{}
	return NewService(units, store, notifier, types.RESERVATION_CONFIRMED), store, notifier
}

func stayBody(checkIn, checkOut string) *types.CreateStayReservationRequestBody {
	return &types.CreateStayReservationRequestBody{
		UnitID:       1,
		FirstName:    "Alice",
		LastName:     "Mbarga",
		Email:        "alice@example.com",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		PartySize:    2,
	}
}

func eventBody(date, start, end string) *types.CreateEventReservationRequestBody {
	return &types.CreateEventReservationRequestBody{
		UnitID:     1,
		FirstName:  "Paul",
		LastName:   "Essomba",
		Email:      "paul@example.com",
		EventType:  "wedding",
		EventDate:  date,
		StartTime:  start,
		EndTime:    end,
		GuestCount: 120,
	}
}

func TestCreateStay(t *testing.T) {
	svc, store, notifier := newTestService()

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, res.TotalPrice)
	assert.Equal(t, types.RESERVATION_CONFIRMED, res.Status)
	assert.Nil(t, res.UserID)
	assert.Len(t, store.rows, 1)
	assert.Equal(t, 1, notifier.created)
}

func TestCreateStayUnknownUnit(t *testing.T) {
	svc, _, _ := newTestService()
	body := stayBody("2025-03-01", "2025-03-04")
	body.UnitID = 99
	_, err := svc.CreateStay(types.KIND_ROOM, body, nil)
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestCreateStayInvalidInterval(t *testing.T) {
	svc, store, _ := newTestService()
	_, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-01"), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Empty(t, store.rows)
}

func TestCreateStayConflict(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-05"), nil)
	require.NoError(t, err)

	_, err = svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-03", "2025-03-07"), nil)
	assert.ErrorIs(t, err, ErrUnitUnavailable)
	assert.Len(t, store.rows, 1)
}

func TestCreateStayBoundaryTouchAllowed(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-05"), nil)
	require.NoError(t, err)
	_, err = svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-05", "2025-03-09"), nil)
	require.NoError(t, err)
	assert.Len(t, store.rows, 2)
}

func TestCancelFreesTheSlot(t *testing.T) {
	svc, _, notifier := newTestService()

	a, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-05"), nil)
	require.NoError(t, err)

	_, err = svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-02", "2025-03-06"), nil)
	require.ErrorIs(t, err, ErrUnitUnavailable)

	require.NoError(t, svc.Cancel(types.KIND_ROOM, a.ID))
	assert.Equal(t, 1, notifier.cancelled)

	_, err = svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-02", "2025-03-06"), nil)
	assert.NoError(t, err)
}

func TestCreateEvent(t *testing.T) {
	svc, _, _ := newTestService()

	res, err := svc.CreateEvent(eventBody("2025-06-10", "18:00", "23:00"), nil)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, res.TotalPrice)
}

func TestCreateEventFlatPriceRegardlessOfDuration(t *testing.T) {
	svc, _, _ := newTestService()

	short, err := svc.CreateEvent(eventBody("2025-06-10", "10:00", "12:00"), nil)
	require.NoError(t, err)
	long, err := svc.CreateEvent(eventBody("2025-06-11", "10:00", "18:00"), nil)
	require.NoError(t, err)
	assert.Equal(t, short.TotalPrice, long.TotalPrice)
}

func TestCreateEventConflictSameDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateEvent(eventBody("2025-06-10", "18:00", "23:00"), nil)
	require.NoError(t, err)

	_, err = svc.CreateEvent(eventBody("2025-06-10", "20:00", "22:00"), nil)
	assert.ErrorIs(t, err, ErrUnitUnavailable)

	// Same slot on a different date is fine.
	_, err = svc.CreateEvent(eventBody("2025-06-11", "18:00", "23:00"), nil)
	assert.NoError(t, err)
}

func TestCreateEventTouchingSlotsAllowed(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateEvent(eventBody("2025-06-10", "10:00", "14:00"), nil)
	require.NoError(t, err)
	_, err = svc.CreateEvent(eventBody("2025-06-10", "14:00", "18:00"), nil)
	assert.NoError(t, err)
}

func TestCreateEventEmptySlotRejected(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.CreateEvent(eventBody("2025-06-10", "14:00", "14:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestUpdateRevalidatesInterval(t *testing.T) {
	svc, store, _ := newTestService()

	first, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-05"), nil)
	require.NoError(t, err)
	_, err = svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-06", "2025-03-08"), nil)
	require.NoError(t, err)

	in := "2025-03-03"
	out := "2025-03-10"
	_, err = svc.Update(types.KIND_ROOM, first.ID, &types.UpdateReservationRequestBody{
		CheckInDate:  &in,
		CheckOutDate: &out,
	})
	assert.ErrorIs(t, err, ErrUnitUnavailable)

	// The stored reservation keeps its original interval and price.
	stored := store.rows[first.ID]
	assert.Equal(t, first.CheckInDate.Format("2006-01-02"), stored.CheckInDate.Format("2006-01-02"))
	assert.Equal(t, first.CheckOutDate.Format("2006-01-02"), stored.CheckOutDate.Format("2006-01-02"))
	assert.Equal(t, first.TotalPrice, stored.TotalPrice)
}

func TestUpdateRepricesOnIntervalChange(t *testing.T) {
	svc, _, _ := newTestService()

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)
	require.Equal(t, 30000.0, res.TotalPrice)

	out := "2025-03-06"
	updated, err := svc.Update(types.KIND_ROOM, res.ID, &types.UpdateReservationRequestBody{CheckOutDate: &out})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, updated.TotalPrice)
}

func TestUpdateGuestInfoSkipsAvailabilityCheck(t *testing.T) {
	svc, store, _ := newTestService()

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)

	calls := store.listActiveCalls
	name := "Bernadette"
	updated, err := svc.Update(types.KIND_ROOM, res.ID, &types.UpdateReservationRequestBody{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Bernadette", updated.FirstName)
	assert.Equal(t, calls, store.listActiveCalls)
	assert.Equal(t, res.TotalPrice, updated.TotalPrice)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)

	bogus := "checked_in"
	_, err = svc.Update(types.KIND_ROOM, res.ID, &types.UpdateReservationRequestBody{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateAcceptsKnownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)

	pending := string(types.RESERVATION_PENDING)
	updated, err := svc.Update(types.KIND_ROOM, res.ID, &types.UpdateReservationRequestBody{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, types.RESERVATION_PENDING, updated.Status)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Update(types.KIND_ROOM, 42, &types.UpdateReservationRequestBody{})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestConfirm(t *testing.T) {
	units := &fakeUnits{units: map[types.ReservationKind]map[uint]UnitInfo{
		types.KIND_ROOM: {1: {ID: 1, HotelID: 1, Rate: 10000}},
	}}
	store := newFakeStore()
	notifier := &recordingNotifier{}
	svc := NewService(units, store, notifier, types.RESERVATION_PENDING)

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)
	require.Equal(t, types.RESERVATION_PENDING, res.Status)

	confirmed, err := svc.Confirm(types.KIND_ROOM, res.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RESERVATION_CONFIRMED, confirmed.Status)
	assert.Equal(t, 1, notifier.confirmed)

	_, err = svc.Confirm(types.KIND_ROOM, 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDeleteIsHard(t *testing.T) {
	svc, store, notifier := newTestService()

	res, err := svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(types.KIND_ROOM, res.ID))
	assert.Empty(t, store.rows)
	assert.Equal(t, 1, notifier.deleted)

	_, err = svc.Get(types.KIND_ROOM, res.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCheckAndPrice(t *testing.T) {
	svc, _, _ := newTestService()

	in := "2025-03-01"
	out := "2025-03-04"
	ok, price, err := svc.CheckAndPrice(types.KIND_ROOM, &types.CheckAvailabilityRequestBody{
		UnitID:       1,
		CheckInDate:  &in,
		CheckOutDate: &out,
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30000.0, price)

	_, err = svc.CreateStay(types.KIND_ROOM, stayBody("2025-03-01", "2025-03-04"), nil)
	require.NoError(t, err)

	ok, _, err = svc.CheckAndPrice(types.KIND_ROOM, &types.CheckAvailabilityRequestBody{
		UnitID:       1,
		CheckInDate:  &in,
		CheckOutDate: &out,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

// Sequentially create random intervals and verify the accepted set never
// contains an overlapping pair.
func TestNoOverlapInvariant(t *testing.T) {
	svc, store, _ := newTestService()
	rng := rand.New(rand.NewSource(7))

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		start := rng.Intn(60)
		nights := rng.Intn(6)
		in := base.AddDate(0, 0, start).Format("2006-01-02")
		out := base.AddDate(0, 0, start+nights).Format("2006-01-02")
		_, err := svc.CreateStay(types.KIND_ROOM, stayBody(in, out), nil)
		if err != nil {
			assert.True(t,
				err == ErrUnitUnavailable || err == ErrInvalidInterval,
				"unexpected error: %v", err)
		}
	}

	var accepted []models.Reservation
	for _, r := range store.rows {
		accepted = append(accepted, *r)
	}
	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			a := stayRange(&accepted[i])
			b := stayRange(&accepted[j])
			assert.False(t, a.Overlaps(b),
				"overlap between %v-%v and %v-%v",
				a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut)
		}
	}
	assert.NotEmpty(t, accepted)
}
