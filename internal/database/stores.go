package database

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/config"
	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

// Collection (and MySQL table) names.
const (
	Reservations = "reservations"
	Contacts     = "contacts"
	Reviews      = "reviews"
	MenuItems    = "menu_items"
)

// Stores groups the four collections the API works on.
type Stores struct {
	Reservations store.Collection[model.Reservation]
	Contacts     store.Collection[model.Contact]
	Reviews      store.Collection[model.Review]
	MenuItems    store.Collection[model.MenuItem]

	close func(context.Context) error
}

// Close releases the underlying connection, if any.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// MemoryStores returns empty in-process collections.
func MemoryStores() *Stores {
	return &Stores{
		Reservations: store.NewMemoryCollection[model.Reservation](),
		Contacts:     store.NewMemoryCollection[model.Contact](),
		Reviews:      store.NewMemoryCollection[model.Review](),
		MenuItems:    store.NewMemoryCollection[model.MenuItem](),
	}
}

// OpenStores connects the backend selected by cfg.StoreDriver.
func OpenStores(ctx context.Context, cfg config.Config, logger *log.Logger) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn("store: using in-memory collections, data is lost on restart")
		return MemoryStores(), nil
	case config.DriverMongo:
		return openMongoStores(ctx, cfg, logger)
	case config.DriverMySQL:
		return openMySQLStores(ctx, cfg, logger)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openMongoStores(ctx context.Context, cfg config.Config, logger *log.Logger) (s *Stores, err error) {
	client, err := OpenMongo(ctx, cfg.MongoURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = client.Disconnect(context.Background())
		}
	}()
	db := client.Database(cfg.DBName)

	s = &Stores{close: client.Disconnect}
	if s.Reservations, err = store.NewMongoCollection[model.Reservation](ctx, db.Collection(Reservations)); err != nil {
		return nil, err
	}
	if s.Contacts, err = store.NewMongoCollection[model.Contact](ctx, db.Collection(Contacts)); err != nil {
		return nil, err
	}
	if s.Reviews, err = store.NewMongoCollection[model.Review](ctx, db.Collection(Reviews)); err != nil {
		return nil, err
	}
	if s.MenuItems, err = store.NewMongoCollection[model.MenuItem](ctx, db.Collection(MenuItems)); err != nil {
		return nil, err
	}
	logger.Infof("store: connected to mongo database %s", cfg.DBName)
	return s, nil
}

func openMySQLStores(ctx context.Context, cfg config.Config, logger *log.Logger) (s *Stores, err error) {
	db, err := OpenMySQL(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = db.Close()
		}
	}()

	s = &Stores{close: func(context.Context) error { return db.Close() }}
	if s.Reservations, err = store.NewMySQLCollection[model.Reservation](ctx, db, Reservations); err != nil {
		return nil, err
	}
	if s.Contacts, err = store.NewMySQLCollection[model.Contact](ctx, db, Contacts); err != nil {
		return nil, err
	}
	if s.Reviews, err = store.NewMySQLCollection[model.Review](ctx, db, Reviews); err != nil {
		return nil, err
	}
	if s.MenuItems, err = store.NewMySQLCollection[model.MenuItem](ctx, db, MenuItems); err != nil {
		return nil, err
	}
	logger.Infof("store: connected to mysql database %s on %s:%s", cfg.DBName, cfg.DBHost, cfg.DBPort)
	return s, nil
}
