package appointment

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	"github.com/groomshop/grooming-scheduler/internal/audit"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const hour = time.Hour

// ------------------------------
// fake repository
// ------------------------------

type fakeRepo struct {
	nextID       uint
	appointments map[uint]models.Appointment
	users        map[uint]models.User
	types        map[uint]models.ServiceType
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]models.Appointment),
		users:        make(map[uint]models.User),
		types:        make(map[uint]models.ServiceType),
	}
}

func (r *fakeRepo) Create(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
	}
	ap.User = r.users[ap.UserID]
	ap.ServiceType = r.types[ap.ServiceTypeID]
	return &ap, nil
}

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for id := range r.appointments {
		ap, _ := r.GetByID(ctx, id)

		if filter.Date != nil && !clock.SameDate(ap.ScheduledAt, *filter.Date) {
			continue
		}
		if filter.NameSubstring != "" {
			needle := strings.ToLower(filter.NameSubstring)
			name := strings.ToLower(ap.User.DisplayName)
			username := strings.ToLower(ap.User.Username)
			if !strings.Contains(name, needle) && !strings.Contains(username, needle) {
				continue
			}
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}

func (r *fakeRepo) Mutate(
	ctx context.Context,
	id uint,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	ap, ok := r.appointments[id]
	if !ok {
		return nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
	}

	if err := fn(&ap); err != nil {
		return nil, err
	}

	r.appointments[id] = ap
	return r.GetByID(ctx, id)
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return apperr.NotFound("appointment_not_found", "Appointment not found.")
	}
	delete(r.appointments, id)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------
// fake catalog
// ------------------------------

type fakeCatalog struct {
	types map[uint]models.ServiceType
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{types: make(map[uint]models.ServiceType)}
}

func (c *fakeCatalog) GetServiceType(_ context.Context, id uint) (*models.ServiceType, error) {
	st, ok := c.types[id]
	if !ok {
		return nil, apperr.NotFound("invalid_service_type", "Service type not found.")
	}
	return &st, nil
}

func (c *fakeCatalog) ListServiceTypes(_ context.Context) ([]models.ServiceType, error) {
	var out []models.ServiceType
	for _, st := range c.types {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ------------------------------
// fake oracle
// ------------------------------

type oracleCall struct {
	userID        uint
	serviceTypeID uint
	reference     time.Time
}

type fakeOracle struct {
	discount decimal.Decimal
	err      error
	// byReference, when set, makes the output depend on the reference
	// timestamp.
	byReference func(ref time.Time) decimal.Decimal

	calls []oracleCall
}

func (o *fakeOracle) ComputeDiscount(
	_ context.Context,
	userID uint,
	serviceTypeID uint,
	reference time.Time,
) (decimal.Decimal, error) {

	o.calls = append(o.calls, oracleCall{
		userID:        userID,
		serviceTypeID: serviceTypeID,
		reference:     reference,
	})

	if o.err != nil {
		return decimal.Zero, o.err
	}
	if o.byReference != nil {
		return o.byReference(reference), nil
	}
	return o.discount, nil
}

// ------------------------------
// capture sink
// ------------------------------

type captureSink struct {
	events []audit.Event
}

func (s *captureSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// ------------------------------
// fixture
// ------------------------------

type fixture struct {
	repo   *fakeRepo
	cat    *fakeCatalog
	oracle *fakeOracle
	sink   *captureSink
	clock  clock.Fixed

	create      *Create
	get         *Get
	getDetail   *GetDetail
	list        *List
	update      *Update
	del         *Delete
	setStatus   *SetStatus
	permissions *Permissions
}

func newFixture() *fixture {
	f := &fixture{
		repo:   newFakeRepo(),
		cat:    newFakeCatalog(),
		oracle: &fakeOracle{discount: decimal.Zero},
		sink:   &captureSink{},
		clock:  clock.Fixed{T: testNow},
	}

	policy := domain.NewPolicy()

	f.create = NewCreate(f.repo, f.cat, f.oracle, f.clock, f.sink)
	f.get = NewGet(f.repo)
	f.getDetail = NewGetDetail(f.repo)
	f.list = NewList(f.repo)
	f.update = NewUpdate(f.repo, f.cat, f.oracle, policy, f.clock, f.sink)
	f.del = NewDelete(f.repo, policy, f.clock, f.sink)
	f.setStatus = NewSetStatus(f.repo, policy, f.clock, f.sink)
	f.permissions = NewPermissions(f.repo, policy, f.clock)

	f.seed()
	return f
}

func (f *fixture) seed() {
	f.repo.users[7] = models.User{
		ID: 7, Username: "dana", DisplayName: "Dana",
		CreatedAt: testNow.AddDate(-1, 0, 0),
	}
	f.repo.users[9] = models.User{
		ID: 9, Username: "boris", DisplayName: "Boris",
		CreatedAt: testNow.AddDate(0, -2, 0),
	}

	wash := models.ServiceType{
		ID: 1, Name: "Wash", DurationMinutes: 30,
		Price: decimal.RequireFromString("50.00"),
	}
	groom := models.ServiceType{
		ID: 2, Name: "Full Groom", DurationMinutes: 90,
		Price: decimal.RequireFromString("120.00"),
	}

	for _, st := range []models.ServiceType{wash, groom} {
		f.repo.types[st.ID] = st
		f.cat.types[st.ID] = st
	}
}

func (f *fixture) withClock(t time.Time) {
	f.clock = clock.Fixed{T: t}

	policy := domain.NewPolicy()
	f.create = NewCreate(f.repo, f.cat, f.oracle, f.clock, f.sink)
	f.update = NewUpdate(f.repo, f.cat, f.oracle, policy, f.clock, f.sink)
	f.del = NewDelete(f.repo, policy, f.clock, f.sink)
	f.setStatus = NewSetStatus(f.repo, policy, f.clock, f.sink)
	f.permissions = NewPermissions(f.repo, policy, f.clock)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
