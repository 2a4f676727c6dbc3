package cmd

import (
	"log/slog"

	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateTopUpBalanceCommandHandler() commands.TopUpBalanceCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTopUpBalanceCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, services.NewCostCalculator(c.logger))
}

func (c *CompositionRoot) CreateUpdateParcelDetailsCommandHandler() commands.UpdateParcelDetailsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelDetailsCommandHandler(f, services.NewCostCalculator(c.logger))
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddTrackingEventCommandHandler(f, services.NewTransitionPolicy())
}

func (c *CompositionRoot) CreateAssignDriversCommandHandler() commands.AssignDriversCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriversCommandHandler(f, services.NewDriverDispatcher())
}

func (c *CompositionRoot) CreatePayBillCommandHandler() commands.PayBillCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayBillCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePricingRuleCommandHandler() commands.UpdatePricingRuleCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePricingRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelByTrackingQueryHandler() queries.GetParcelByTrackingQueryHandler {
	return queries.NewGetParcelByTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerBillsQueryHandler() queries.GetCustomerBillsQueryHandler {
	return queries.NewGetCustomerBillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsForDriverQueryHandler() queries.GetParcelsForDriverQueryHandler {
	return queries.NewGetParcelsForDriverQueryHandler(c.gormDB)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
