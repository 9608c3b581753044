package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/config"
	"github.com/brokerhq/commission-service/internal/infrastructure/logger"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.CommissionConfig) *gorm.DB {
	dsn := cfg.CommissionDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AdviserModel{},
		&models.ProviderModel{},
		&models.ProductTypeModel{},
		&models.SaleModel{},
		&models.CommissionModel{},
		&models.OverrideModel{},
		&models.RetentionModel{},
		&models.ClawbackModel{},
		&models.BonusModel{},
		&models.ReferralFeeModel{},
		&models.CommissionSplitModel{},
		&models.AdvanceModel{},
		&models.RepaymentModel{},
		&models.VestingScheduleModel{},
		&models.ScheduledPayoutModel{},
		&logger.IngestionTaskRecord{},
		&logger.CommissionComputedRecord{},
		&logger.CommissionReversedRecord{},
	)

	return db
}
