package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youwilldrive/domain"
)

type fakeUserRepo struct {
	domain.UserRepository
	provisioned *domain.NewUser
}

func (f *fakeUserRepo) ProvisionUser(_ context.Context, input domain.NewUser) (*domain.User, error) {
	f.provisioned = &input
	return &domain.User{ID: "users:1", Role: input.Role}, nil
}

func TestProvisionUserValidation(t *testing.T) {
	valid := domain.NewUser{
		FirstName: "Иван",
		LastName:  "Петров",
		Phone:     "+79123456789",
		Password:  "secret",
		Role:      domain.RoleCadet,
	}

	cases := []struct {
		name   string
		mutate func(*domain.NewUser)
	}{
		{"missing first name", func(u *domain.NewUser) { u.FirstName = "" }},
		{"missing last name", func(u *domain.NewUser) { u.LastName = "" }},
		{"missing phone", func(u *domain.NewUser) { u.Phone = "" }},
		{"missing password", func(u *domain.NewUser) { u.Password = "" }},
		{"missing role", func(u *domain.NewUser) { u.Role = "" }},
		{"unknown role", func(u *domain.NewUser) { u.Role = "manager" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := NewUserService(&fakeUserRepo{}).ProvisionUser(context.Background(), input)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}

	repo := &fakeUserRepo{}
	user, err := NewUserService(repo).ProvisionUser(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCadet, user.Role)
	require.NotNil(t, repo.provisioned)
}

type fakeCadetRepo struct {
	domain.CadetRepository
	configured bool
}

func (f *fakeCadetRepo) Configure(context.Context, string, domain.CadetConfig) error {
	f.configured = true
	return nil
}

func TestConfigureCadetValidation(t *testing.T) {
	svc := NewCadetService(&fakeCadetRepo{})

	err := svc.Configure(context.Background(), "", domain.CadetConfig{PaymentPlan: "plan:1", InstructorID: "users:2"})
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)

	err = svc.Configure(context.Background(), "users:1", domain.CadetConfig{InstructorID: "users:2"})
	assert.ErrorAs(t, err, &validation)

	err = svc.Configure(context.Background(), "users:1", domain.CadetConfig{PaymentPlan: "plan:1"})
	assert.ErrorAs(t, err, &validation)

	repo := &fakeCadetRepo{}
	err = NewCadetService(repo).Configure(context.Background(), "users:1", domain.CadetConfig{
		PaymentPlan:  "plan:1",
		InstructorID: "users:2",
	})
	require.NoError(t, err)
	assert.True(t, repo.configured)
}

type fakeInstructorRepo struct {
	domain.InstructorRepository
	gotCars []domain.Car
}

func (f *fakeInstructorRepo) ConfigureCars(_ context.Context, _ string, cars []domain.Car) error {
	f.gotCars = cars
	return nil
}

func TestConfigureCarsValidation(t *testing.T) {
	var validation *domain.ValidationError

	err := NewInstructorService(&fakeInstructorRepo{}).ConfigureCars(context.Background(), "", []domain.Car{})
	assert.ErrorAs(t, err, &validation)

	err = NewInstructorService(&fakeInstructorRepo{}).ConfigureCars(context.Background(), "users:1", nil)
	assert.ErrorAs(t, err, &validation)

	// An empty list is a valid submission meaning "no cars".
	repo := &fakeInstructorRepo{}
	err = NewInstructorService(repo).ConfigureCars(context.Background(), "users:1", []domain.Car{})
	require.NoError(t, err)
	assert.NotNil(t, repo.gotCars)
}

type fakePlanRepo struct {
	domain.PlanRepository
	created *domain.Plan
}

func (f *fakePlanRepo) CreatePlan(_ context.Context, plan domain.Plan) (*domain.Plan, error) {
	f.created = &plan
	return &plan, nil
}

func TestCreatePlanValidation(t *testing.T) {
	var validation *domain.ValidationError

	_, err := NewPlanService(&fakePlanRepo{}).CreatePlan(context.Background(), domain.Plan{PracticeHours: 30})
	assert.ErrorAs(t, err, &validation)

	_, err = NewPlanService(&fakePlanRepo{}).CreatePlan(context.Background(), domain.Plan{Name: "Базовый"})
	assert.ErrorAs(t, err, &validation)

	_, err = NewPlanService(&fakePlanRepo{}).CreatePlan(context.Background(), domain.Plan{
		Name: "Базовый", PracticeHours: 30, Price: -1,
	})
	assert.ErrorAs(t, err, &validation)

	repo := &fakePlanRepo{}
	_, err = NewPlanService(repo).CreatePlan(context.Background(), domain.Plan{
		Name: "Базовый", PracticeHours: 30, TheoryHours: 20, Price: 45000,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

type fakeEventRepo struct {
	domain.EventRepository
	gotYear, gotMonth *int
	called            bool
}

func (f *fakeEventRepo) GetEvents(_ context.Context, year, month *int) ([]domain.Event, error) {
	f.called = true
	f.gotYear, f.gotMonth = year, month
	return nil, nil
}

func TestGetEventsMonthValidation(t *testing.T) {
	year := 2025

	for _, bad := range []int{-1, 12, 99} {
		month := bad
		_, err := NewEventService(&fakeEventRepo{}).GetEvents(context.Background(), &year, &month)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation, "month %d", bad)
	}

	// A lone year is dropped rather than rejected.
	repo := &fakeEventRepo{}
	_, err := NewEventService(repo).GetEvents(context.Background(), &year, nil)
	require.NoError(t, err)
	assert.True(t, repo.called)
	assert.Nil(t, repo.gotYear)

	month := 0
	repo = &fakeEventRepo{}
	_, err = NewEventService(repo).GetEvents(context.Background(), &year, &month)
	require.NoError(t, err)
	require.NotNil(t, repo.gotMonth)
	assert.Equal(t, 0, *repo.gotMonth)
}
