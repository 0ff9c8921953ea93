package usecase_test

import (
	"context"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock implementations of the repository interfaces

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) FindValidByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

type MockPlayRepo struct {
	mock.Mock
}

func (m *MockPlayRepo) Create(ctx context.Context, play *entity.Play) error {
	args := m.Called(ctx, play)
	return args.Error(0)
}

func (m *MockPlayRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Play), args.Error(1)
}

func (m *MockPlayRepo) FindAll(ctx context.Context, filter repository.PlayFilter) ([]*entity.Play, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Play), args.Error(1)
}

func (m *MockPlayRepo) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	args := m.Called(ctx, id, imagePath)
	return args.Error(0)
}

func (m *MockPlayRepo) ReplaceGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error {
	args := m.Called(ctx, playID, genreIDs)
	return args.Error(0)
}

func (m *MockPlayRepo) ReplaceActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error {
	args := m.Called(ctx, playID, actorIDs)
	return args.Error(0)
}

func (m *MockPlayRepo) FindGenresByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Genre, error) {
	args := m.Called(ctx, playID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockPlayRepo) FindActorsByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error) {
	args := m.Called(ctx, playID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

type MockTheatreHallRepo struct {
	mock.Mock
}

func (m *MockTheatreHallRepo) Create(ctx context.Context, hall *entity.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockTheatreHallRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreHall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TheatreHall), args.Error(1)
}

func (m *MockTheatreHallRepo) FindAll(ctx context.Context) ([]*entity.TheatreHall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TheatreHall), args.Error(1)
}

type MockPerformanceRepo struct {
	mock.Mock
}

func (m *MockPerformanceRepo) Create(ctx context.Context, performance *entity.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Performance), args.Error(1)
}

func (m *MockPerformanceRepo) FindAll(ctx context.Context, filter repository.PerformanceFilter) ([]*repository.PerformanceRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.PerformanceRow), args.Error(1)
}

func (m *MockPerformanceRepo) Update(ctx context.Context, performance *entity.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) CreateWithTickets(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) error {
	args := m.Called(ctx, reservation, tickets)
	return args.Error(0)
}

func (m *MockReservationRepo) AppendTickets(ctx context.Context, reservationID uuid.UUID, tickets []*entity.Ticket) error {
	args := m.Called(ctx, reservationID, tickets)
	return args.Error(0)
}

func (m *MockReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepo) FindTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]repository.SeatPlace, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SeatPlace), args.Error(1)
}

func (m *MockTicketRepo) FindRowsByUserID(ctx context.Context, userID uuid.UUID) ([]*repository.TicketRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.TicketRow), args.Error(1)
}

// MockMailer records outgoing mail for the auth tests.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
