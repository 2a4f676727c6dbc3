// Package http adapts the generated OpenAPI server interface to the
// application's command and query handlers.
package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/generated/servers"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createUserHandler        commands.CreateUserCommandHandler
	topUpBalanceHandler      commands.TopUpBalanceCommandHandler
	createParcelHandler      commands.CreateParcelCommandHandler
	updateParcelHandler      commands.UpdateParcelDetailsCommandHandler
	addTrackingEventHandler  commands.AddTrackingEventCommandHandler
	assignDriversHandler     commands.AssignDriversCommandHandler
	payBillHandler           commands.PayBillCommandHandler
	updatePricingRuleHandler commands.UpdatePricingRuleCommandHandler

	// Query handlers
	getParcelHandler        queries.GetParcelByTrackingQueryHandler
	getCustomerBillsHandler queries.GetCustomerBillsQueryHandler
	getDriverParcelsHandler queries.GetParcelsForDriverQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createUserHandler commands.CreateUserCommandHandler,
	topUpBalanceHandler commands.TopUpBalanceCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelDetailsCommandHandler,
	addTrackingEventHandler commands.AddTrackingEventCommandHandler,
	assignDriversHandler commands.AssignDriversCommandHandler,
	payBillHandler commands.PayBillCommandHandler,
	updatePricingRuleHandler commands.UpdatePricingRuleCommandHandler,
	getParcelHandler queries.GetParcelByTrackingQueryHandler,
	getCustomerBillsHandler queries.GetCustomerBillsQueryHandler,
	getDriverParcelsHandler queries.GetParcelsForDriverQueryHandler,
) *Server {
	return &Server{
		createUserHandler:        createUserHandler,
		topUpBalanceHandler:      topUpBalanceHandler,
		createParcelHandler:      createParcelHandler,
		updateParcelHandler:      updateParcelHandler,
		addTrackingEventHandler:  addTrackingEventHandler,
		assignDriversHandler:     assignDriversHandler,
		payBillHandler:           payBillHandler,
		updatePricingRuleHandler: updatePricingRuleHandler,
		getParcelHandler:         getParcelHandler,
		getCustomerBillsHandler:  getCustomerBillsHandler,
		getDriverParcelsHandler:  getDriverParcelsHandler,
	}
}

// CreateUser handles POST /api/v1/users - registers a new user account.
func (s *Server) CreateUser(ctx echo.Context) error {
	var body servers.NewUser
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role, err := user.RoleFromString(string(body.Role))
	if err != nil {
		return domainError(ctx, err)
	}

	customer, err := customerProfileFromRequest(body)
	if err != nil {
		return domainError(ctx, err)
	}

	var driver *user.DriverProfile
	if body.VehicleId != nil {
		driver = &user.DriverProfile{VehicleID: *body.VehicleId}
	}

	var warehouse *user.WarehouseProfile
	if body.LocationId != nil {
		warehouse = &user.WarehouseProfile{LocationID: *body.LocationId}
	}

	var employee *user.EmployeeProfile
	if body.Department != nil {
		employee = &user.EmployeeProfile{Department: *body.Department}
	}

	cmd, err := commands.NewCreateUserCommand(
		kernel.NewUUID(),
		body.Username, body.Password, body.FullName, body.Email, body.Phone,
		role, customer, driver, warehouse, employee,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.User{
		Id:       created.ID().Bytes(),
		Username: created.Username(),
		FullName: created.FullName(),
		Role:     created.Role().String(),
	})
}

// TopUpBalance handles POST /api/v1/users/{userId}/topup - credits a customer's balance.
func (s *Server) TopUpBalance(ctx echo.Context, userId openapi_types.UUID) error {
	var body servers.TopUpRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	amount, err := kernel.NewMoneyFromFloat(body.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewTopUpBalanceCommand(customerID, amount)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.topUpBalanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateParcel handles POST /api/v1/parcels - creates a parcel with its bill.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.NewParcel
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := createParcelCommandFromRequest(body)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelResponse(created))
}

// GetParcel handles GET /api/v1/parcels/{trackingNumber} - public tracking lookup.
func (s *Server) GetParcel(ctx echo.Context, trackingNumber string) error {
	number, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetParcelByTrackingQuery(number)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	events := make([]servers.TrackingEvent, len(result.Events))
	for i, event := range result.Events {
		events[i] = servers.TrackingEvent{
			OccurredAt:  event.OccurredAt,
			Location:    event.Location,
			Status:      event.Status.String(),
			Description: event.Description,
		}
	}

	senderID := result.SenderID.Bytes()
	resp := servers.Parcel{
		Id:                result.ID.Bytes(),
		TrackingNumber:    result.TrackingNumber,
		SenderId:          &senderID,
		RecipientName:     &result.RecipientName,
		RecipientAddress:  &result.RecipientAddress,
		Status:            result.Status.String(),
		DeliverySpeed:     result.DeliverySpeed.String(),
		Weight:            result.Weight,
		ShippingCost:      result.ShippingCost.Float64(),
		CreatedAt:         result.CreatedAt,
		EstimatedDelivery: result.EstimatedDelivery,
		Events:            &events,
	}
	if result.AssignedDriverID != nil {
		driverID := result.AssignedDriverID.Bytes()
		resp.AssignedDriverId = &driverID
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdateParcel handles PATCH /api/v1/parcels/{trackingNumber} - partial update of
// mutable parcel details, repricing when weight or speed change.
func (s *Server) UpdateParcel(ctx echo.Context, trackingNumber string) error {
	var body servers.ParcelUpdate
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	number, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	actorID, err := kernel.UUIDFromBytes(body.ActorId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	var dimensions *parcel.Dimensions
	if body.Width != nil || body.Height != nil || body.Length != nil {
		if body.Width == nil || body.Height == nil || body.Length == nil {
			return errorResponse(ctx, http.StatusBadRequest, "All three dimensions must be supplied together")
		}
		dims, dimsErr := parcel.NewDimensions(*body.Width, *body.Height, *body.Length)
		if dimsErr != nil {
			return domainError(ctx, dimsErr)
		}
		dimensions = &dims
	}

	var speed *kernel.DeliverySpeed
	if body.DeliverySpeed != nil {
		parsed, speedErr := kernel.DeliverySpeedFromString(string(*body.DeliverySpeed))
		if speedErr != nil {
			return domainError(ctx, speedErr)
		}
		speed = &parsed
	}

	cmd, err := commands.NewUpdateParcelDetailsCommand(
		number, body.Weight, dimensions, speed,
		body.Hazardous, body.Fragile, body.International, actorID,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelResponse(updated))
}

// AddTrackingEvent handles POST /api/v1/parcels/{trackingNumber}/events - records
// a status transition subject to the actor's role permissions.
func (s *Server) AddTrackingEvent(ctx echo.Context, trackingNumber string) error {
	var body servers.NewTrackingEvent
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	number, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	target, err := parcel.StatusFromString(body.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	actorID, err := kernel.UUIDFromBytes(body.ActorId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewAddTrackingEventCommand(number, target, body.Location, body.Description, actorID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.addTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDrivers handles POST /api/v1/parcels/assign - triggers a round-robin
// assignment run over sorted, unassigned parcels.
func (s *Server) AssignDrivers(ctx echo.Context) error {
	cmd := commands.NewAssignDriversCommand()

	assigned, err := s.assignDriversHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AssignmentResult{Assigned: assigned})
}

// GetDriverParcels handles GET /api/v1/drivers/{driverId}/parcels - the driver's
// open manifest.
func (s *Server) GetDriverParcels(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetParcelsForDriverQuery(driverID)
	if err != nil {
		return domainError(ctx, err)
	}

	manifest, err := s.getDriverParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.ManifestEntry, len(manifest))
	for i, entry := range manifest {
		fragile := entry.Flags.Fragile
		hazardous := entry.Flags.Hazardous
		international := entry.Flags.International
		response[i] = servers.ManifestEntry{
			Id:               entry.ID.Bytes(),
			TrackingNumber:   entry.TrackingNumber,
			RecipientName:    entry.RecipientName,
			RecipientAddress: entry.RecipientAddress,
			RecipientPhone:   entry.RecipientPhone,
			Status:           entry.Status.String(),
			Fragile:          &fragile,
			Hazardous:        &hazardous,
			International:    &international,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerBills handles GET /api/v1/customers/{customerId}/bills - billing history.
func (s *Server) GetCustomerBills(ctx echo.Context, customerId openapi_types.UUID) error {
	customerID, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetCustomerBillsQuery(customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	bills, err := s.getCustomerBillsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.Bill, len(bills))
	for i, bill := range bills {
		response[i] = servers.Bill{
			Id:             bill.ID.Bytes(),
			TrackingNumber: bill.TrackingNumber,
			Amount:         bill.Amount.Float64(),
			IsPaid:         bill.IsPaid,
			PaymentMethod:  bill.PaymentMethod.String(),
			CreatedAt:      bill.CreatedAt,
			PaidAt:         bill.PaidAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PayBill handles POST /api/v1/bills/{billId}/pay - settles a bill from the
// customer's prepaid balance.
func (s *Server) PayBill(ctx echo.Context, billId openapi_types.UUID) error {
	var body servers.PayBillRequest
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	billID, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewPayBillCommand(billID, customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.payBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePricingRule handles PUT /api/v1/pricing - admin-only upsert of the
// pricing rule for one delivery speed.
func (s *Server) UpdatePricingRule(ctx echo.Context) error {
	var body servers.PricingRule
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromBytes(body.ActorId[:])
	if err != nil {
		return domainError(ctx, err)
	}

	speed, err := kernel.DeliverySpeedFromString(string(body.DeliverySpeed))
	if err != nil {
		return domainError(ctx, err)
	}

	baseRate, err := kernel.NewMoneyFromFloat(body.BaseRate)
	if err != nil {
		return domainError(ctx, err)
	}

	ratePerKg, err := kernel.NewMoneyFromFloat(body.RatePerKg)
	if err != nil {
		return domainError(ctx, err)
	}

	ratePerKm := kernel.ZeroMoney()
	if body.RatePerKm != nil {
		ratePerKm, err = kernel.NewMoneyFromFloat(*body.RatePerKm)
		if err != nil {
			return domainError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdatePricingRuleCommand(actorID, speed, baseRate, ratePerKg, ratePerKm)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.updatePricingRuleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func createParcelCommandFromRequest(body servers.NewParcel) (commands.CreateParcelCommand, error) {
	senderID, err := kernel.UUIDFromBytes(body.SenderId[:])
	if err != nil {
		return commands.CreateParcelCommand{}, err
	}

	recipient, err := parcel.NewRecipient(body.RecipientName, body.RecipientAddress, body.RecipientPhone)
	if err != nil {
		return commands.CreateParcelCommand{}, err
	}

	dimensions, err := parcel.NewDimensions(body.Width, body.Height, body.Length)
	if err != nil {
		return commands.CreateParcelCommand{}, err
	}

	packageType, err := parcel.PackageTypeFromString(string(body.PackageType))
	if err != nil {
		return commands.CreateParcelCommand{}, err
	}

	speed, err := kernel.DeliverySpeedFromString(string(body.DeliverySpeed))
	if err != nil {
		return commands.CreateParcelCommand{}, err
	}

	paymentMethod, err := billing.PaymentMethodFromString(string(body.PaymentMethod))
	if err != nil {
		return commands.CreateParcelCommand{}, err
	}

	declaredValue := kernel.ZeroMoney()
	if body.DeclaredValue != nil {
		declaredValue, err = kernel.NewMoneyFromFloat(*body.DeclaredValue)
		if err != nil {
			return commands.CreateParcelCommand{}, err
		}
	}

	contentDescription := ""
	if body.ContentDescription != nil {
		contentDescription = *body.ContentDescription
	}

	flags := parcel.HandlingFlags{
		Hazardous:     body.Hazardous != nil && *body.Hazardous,
		Fragile:       body.Fragile != nil && *body.Fragile,
		International: body.International != nil && *body.International,
	}

	return commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), senderID, recipient,
		body.Weight, dimensions, packageType, speed,
		declaredValue, contentDescription, flags, paymentMethod,
	)
}

func customerProfileFromRequest(body servers.NewUser) (*user.CustomerProfile, error) {
	if body.CustomerType == nil {
		return nil, nil
	}

	customerType, err := user.CustomerTypeFromString(string(*body.CustomerType))
	if err != nil {
		return nil, err
	}

	billingPreference := billing.Monthly
	if body.BillingPreference != nil {
		billingPreference, err = billing.PaymentMethodFromString(string(*body.BillingPreference))
		if err != nil {
			return nil, err
		}
	}

	balance := kernel.ZeroMoney()
	if body.InitialBalance != nil {
		balance, err = kernel.NewMoneyFromFloat(*body.InitialBalance)
		if err != nil {
			return nil, err
		}
	}

	return &user.CustomerProfile{
		CustomerType:      customerType,
		BillingPreference: billingPreference,
		Balance:           balance,
	}, nil
}

func parcelResponse(p *parcel.Parcel) servers.Parcel {
	events := make([]servers.TrackingEvent, len(p.Events()))
	for i, event := range p.Events() {
		events[i] = servers.TrackingEvent{
			OccurredAt:  event.OccurredAt(),
			Location:    event.Location(),
			Status:      event.Status().String(),
			Description: event.Description(),
		}
	}

	senderID := p.SenderID().Bytes()
	recipientName := p.Recipient().Name()
	recipientAddress := p.Recipient().Address()
	resp := servers.Parcel{
		Id:                p.ID().Bytes(),
		TrackingNumber:    p.TrackingNumber().String(),
		SenderId:          &senderID,
		RecipientName:     &recipientName,
		RecipientAddress:  &recipientAddress,
		Status:            p.Status().String(),
		DeliverySpeed:     p.DeliverySpeed().String(),
		Weight:            p.Weight(),
		ShippingCost:      p.ShippingCost().Float64(),
		CreatedAt:         p.CreatedAt(),
		EstimatedDelivery: p.EstimatedDelivery(),
		Events:            &events,
	}
	if p.AssignedDriverID() != nil {
		driverID := p.AssignedDriverID().Bytes()
		resp.AssignedDriverId = &driverID
	}

	return resp
}

// domainError maps domain error sentinels onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrNotAuthorized):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict), errors.Is(err, billing.ErrBillAlreadyPaid):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInsufficientBalance):
		return errorResponse(ctx, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrBackwardTransition),
		errors.Is(err, parcel.ErrParcelIsNotAssignable),
		errors.Is(err, user.ErrNotACustomer):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
