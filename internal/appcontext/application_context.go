package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/purchaseorder/internal/config"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/purchaseorder/internal/service"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	DbConn         *gorm.DB
	DbDao          *db.DbDao
	ProductRepo    db.IProductRepository
	OrderRepo      db.IOrderRepository
	Cf             *config.Config
	ProductService service.IProductService
	OrderService   service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	// 金額在JSON內輸出為數字而非字串
	decimal.MarshalJSONWithoutQuotes = true

	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.setUpRepos()
	if err != nil {
		return err
	}
	err = app.setUpProductService()
	if err != nil {
		return err
	}
	err = app.setUpOrderService()
	if err != nil {
		return err
	}
	err = app.dbInit()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRepos() error {
	log.Printf("Start setup repositories")
	app.ProductRepo = db.NewProductRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	log.Printf("Finish setup repositories")
	return nil
}

func (app *ApplicationContext) setUpProductService() error {
	log.Printf("Start setup product service")
	app.ProductService = service.NewProductService(app.ProductRepo)
	log.Printf("Finish setup product service")
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	log.Printf("Start setup order service")
	app.OrderService = service.NewOrderService(app.OrderRepo, app.ProductRepo)
	log.Printf("Finish setup order service")
	return nil
}

// db migration and db seed data
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	err := app.DbDao.InitMigrate()
	if err != nil {
		return err
	}

	err = app.DbDao.SeedData()
	if err != nil {
		return err
	}

	log.Printf("Finish setup db init")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			sqlDB, err := app.DbConn.DB()
			if err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
