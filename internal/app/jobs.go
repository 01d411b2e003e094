package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopcore/shopcore/internal/domain"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	// the boot-time repair also reruns daily in case the account drifts
	_, err = a.sched.AddFunc("@daily", func() {
		a.checkSuper()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@every 1h", func() {
		a.SchedDatabasePing()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedDatabasePing keeps the pool warm and logs basic table counts.
func (a *Application) SchedDatabasePing() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	sqlDB, err := a.gormDB.DB()
	if err != nil {
		zap.L().Error("database handle unavailable", zap.Error(err))
		return
	}
	if err := sqlDB.Ping(); err != nil {
		zap.L().Error("database ping failed", zap.Error(err))
		return
	}

	var users, products, orders int64
	a.gormDB.Model(&domain.User{}).Count(&users)
	a.gormDB.Model(&domain.Product{}).Count(&products)
	a.gormDB.Model(&domain.Order{}).Count(&orders)
	zap.L().Info("database keepalive",
		zap.Int64("users", users),
		zap.Int64("products", products),
		zap.Int64("orders", orders))
}
