package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newReservationFixture() (*MockPerformanceRepo, *MockTheatreHallRepo, *MockReservationRepo, *MockTicketRepo, usecase.ReservationService) {
	performanceRepo := new(MockPerformanceRepo)
	hallRepo := new(MockTheatreHallRepo)
	reservationRepo := new(MockReservationRepo)
	ticketRepo := new(MockTicketRepo)

	repo := &repository.Repository{
		Performance: performanceRepo,
		TheatreHall: hallRepo,
		Reservation: reservationRepo,
		Ticket:      ticketRepo,
	}

	service := usecase.NewReservationService(repo, zap.NewNop())
	return performanceRepo, hallRepo, reservationRepo, ticketRepo, service
}

func fixturePerformance(hallID uuid.UUID) *entity.Performance {
	return &entity.Performance{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PlayID:        uuid.New(),
		TheatreHallID: hallID,
		ShowTime:      time.Now().Add(24 * time.Hour),
	}
}

func fixtureHall(rows, seatsPerRow int) *entity.TheatreHall {
	return &entity.TheatreHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Main hall",
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
	}
}

func TestCreateReservation_EmptyTickets(t *testing.T) {
	_, _, _, _, service := newReservationFixture()

	_, err := service.CreateReservation(context.Background(), uuid.New(), &request.CreateReservationRequest{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateReservation_Success(t *testing.T) {
	performanceRepo, hallRepo, reservationRepo, _, service := newReservationFixture()

	hall := fixtureHall(10, 12)
	performance := fixturePerformance(hall.ID)
	userID := uuid.New()

	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil).Once()
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil).Once()
	reservationRepo.On("CreateWithTickets", mock.Anything,
		mock.MatchedBy(func(r *entity.Reservation) bool { return r.UserID == userID }),
		mock.MatchedBy(func(tickets []*entity.Ticket) bool { return len(tickets) == 2 }),
	).Return(nil)

	resp, err := service.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, PerformanceID: performance.ID.String()},
			{Row: 1, Seat: 2, PerformanceID: performance.ID.String()},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Tickets, 2)
	assert.Equal(t, userID.String(), resp.UserID)
	performanceRepo.AssertExpectations(t)
	reservationRepo.AssertExpectations(t)
}

func TestCreateReservation_RowOutOfBounds(t *testing.T) {
	performanceRepo, hallRepo, _, _, service := newReservationFixture()

	hall := fixtureHall(10, 12)
	performance := fixturePerformance(hall.ID)

	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)

	_, err := service.CreateReservation(context.Background(), uuid.New(), &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{Row: 11, Seat: 1, PerformanceID: performance.ID.String()},
		},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row must be in range 1..10")
}

func TestCreateReservation_SeatOutOfBounds(t *testing.T) {
	performanceRepo, hallRepo, _, _, service := newReservationFixture()

	hall := fixtureHall(10, 12)
	performance := fixturePerformance(hall.ID)

	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)

	_, err := service.CreateReservation(context.Background(), uuid.New(), &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{Row: 2, Seat: 13, PerformanceID: performance.ID.String()},
		},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seat must be in range 1..12")
}

func TestCreateReservation_SeatTaken(t *testing.T) {
	performanceRepo, hallRepo, reservationRepo, _, service := newReservationFixture()

	hall := fixtureHall(10, 12)
	performance := fixturePerformance(hall.ID)

	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)
	reservationRepo.On("CreateWithTickets", mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("seat row 1 seat 1: %w", repository.ErrSeatTaken))

	_, err := service.CreateReservation(context.Background(), uuid.New(), &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, PerformanceID: performance.ID.String()},
		},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seat is already taken")
}

func TestCreateReservation_PerformanceNotFound(t *testing.T) {
	performanceRepo, _, _, _, service := newReservationFixture()

	missing := uuid.New()
	performanceRepo.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := service.CreateReservation(context.Background(), uuid.New(), &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, PerformanceID: missing.String()},
		},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "performance not found")
}

func TestGetReservations_GroupsTicketsByReservation(t *testing.T) {
	_, _, reservationRepo, ticketRepo, service := newReservationFixture()

	userID := uuid.New()
	first := &entity.Reservation{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, UserID: userID}
	second := &entity.Reservation{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, UserID: userID}

	performance := repository.PerformanceRow{
		Performance:     *fixturePerformance(uuid.New()),
		PlayTitle:       "Hamlet",
		HallName:        "Main hall",
		HallRows:        10,
		HallSeatsPerRow: 5,
		TicketsSold:     3,
	}

	reservationRepo.On("FindByUserID", mock.Anything, userID).
		Return([]*entity.Reservation{first, second}, nil)
	// All tickets arrive in one lookup, already joined with their performance
	ticketRepo.On("FindRowsByUserID", mock.Anything, userID).Return([]*repository.TicketRow{
		{
			Ticket: entity.Ticket{
				BaseSimple:    entity.BaseSimple{ID: uuid.New()},
				Row:           1,
				Seat:          1,
				PerformanceID: performance.ID,
				ReservationID: first.ID,
			},
			Performance: performance,
		},
		{
			Ticket: entity.Ticket{
				BaseSimple:    entity.BaseSimple{ID: uuid.New()},
				Row:           1,
				Seat:          2,
				PerformanceID: performance.ID,
				ReservationID: first.ID,
			},
			Performance: performance,
		},
		{
			Ticket: entity.Ticket{
				BaseSimple:    entity.BaseSimple{ID: uuid.New()},
				Row:           2,
				Seat:          1,
				PerformanceID: performance.ID,
				ReservationID: second.ID,
			},
			Performance: performance,
		},
	}, nil)

	result, err := service.GetReservations(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Len(t, result[0].Tickets, 2)
	assert.Len(t, result[1].Tickets, 1)
	assert.Equal(t, "Hamlet", result[0].Tickets[0].Performance.PlayTitle)
	assert.Equal(t, 47, result[0].Tickets[0].Performance.TicketsAvailable)
	ticketRepo.AssertExpectations(t)
	ticketRepo.AssertNumberOfCalls(t, "FindRowsByUserID", 1)
}

func TestGetReservationByID_OtherUsersReservationHidden(t *testing.T) {
	_, _, reservationRepo, _, service := newReservationFixture()

	owner := uuid.New()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     owner,
	}
	reservationRepo.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)

	_, err := service.GetReservationByID(context.Background(), uuid.New(), reservation.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reservation not found")
}

func TestGetReservationByID_TicketsCarryQRCodes(t *testing.T) {
	_, _, reservationRepo, ticketRepo, service := newReservationFixture()

	userID := uuid.New()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
	}
	ticket := &entity.Ticket{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Row:           3,
		Seat:          7,
		PerformanceID: uuid.New(),
		ReservationID: reservation.ID,
	}

	reservationRepo.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)
	ticketRepo.On("FindByReservationID", mock.Anything, reservation.ID).Return([]*entity.Ticket{ticket}, nil)

	resp, err := service.GetReservationByID(context.Background(), userID, reservation.ID)

	assert.NoError(t, err)
	assert.Len(t, resp.Tickets, 1)
	assert.NotEmpty(t, resp.Tickets[0].QRCode)
}

func TestUpdateReservation_AppendsTickets(t *testing.T) {
	performanceRepo, hallRepo, reservationRepo, ticketRepo, service := newReservationFixture()

	hall := fixtureHall(10, 12)
	performance := fixturePerformance(hall.ID)
	userID := uuid.New()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
	}

	reservationRepo.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)
	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)
	reservationRepo.On("AppendTickets", mock.Anything, reservation.ID,
		mock.MatchedBy(func(tickets []*entity.Ticket) bool { return len(tickets) == 1 }),
	).Return(nil)
	ticketRepo.On("FindByReservationID", mock.Anything, reservation.ID).Return([]*entity.Ticket{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Row: 1, Seat: 1, PerformanceID: performance.ID, ReservationID: reservation.ID},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Row: 1, Seat: 2, PerformanceID: performance.ID, ReservationID: reservation.ID},
	}, nil)

	resp, err := service.UpdateReservation(context.Background(), userID, reservation.ID, &request.UpdateReservationRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 2, PerformanceID: performance.ID.String()},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Tickets, 2)
	reservationRepo.AssertExpectations(t)
}

func TestDeleteReservation_OwnerOnly(t *testing.T) {
	_, _, reservationRepo, _, service := newReservationFixture()

	userID := uuid.New()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
	}

	reservationRepo.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)
	reservationRepo.On("Delete", mock.Anything, reservation.ID).Return(nil)

	err := service.DeleteReservation(context.Background(), userID, reservation.ID)

	assert.NoError(t, err)
	reservationRepo.AssertExpectations(t)
}
