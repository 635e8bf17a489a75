package migrate

import (
	"context"

	"github.com/michaeliyer/canCockOne/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateChecks    bool // CHECK constraints (postgres only)
	CreateIndexes   bool // composite indexes beyond the gorm tags
	CreateFKsViaSQL bool // FKs via SQL on top of the gorm constraints
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateChecks:    true,
		CreateIndexes:   true,
		CreateFKsViaSQL: true,
	}
}

// Run creates the schema. AutoMigrate covers both dialects; the raw-SQL
// hardening below is postgres syntax and is skipped on sqlite, where the
// gorm tags plus PRAGMA foreign_keys already enforce the same shape.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting database migration")

	if err := db.WithContext(ctx).AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Variant{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if db.Dialector.Name() != "postgres" {
		log.Info("database migration finished")
		return nil
	}

	if opt.CreateChecks {
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK on order_items.quantity", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_base_price_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_base_price_non_negative
  CHECK (base_price >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK on products.base_price", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_customer_date
ON orders (customer_id, date DESC);
`).Error; err != nil {
			log.Error("failed to create index ix_orders_customer_date", zap.Error(err))
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("failed to create FK order_items.order_id -> orders.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_variant,
  ADD CONSTRAINT fk_order_items_variant
    FOREIGN KEY (variant_id) REFERENCES product_variants(id);
`).Error; err != nil {
			log.Error("failed to create FK order_items.variant_id -> product_variants.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_customer,
  ADD CONSTRAINT fk_orders_customer
    FOREIGN KEY (customer_id) REFERENCES customers(id);
`).Error; err != nil {
			log.Error("failed to create FK orders.customer_id -> customers.id", zap.Error(err))
			return err
		}
	}

	log.Info("database migration finished")
	return nil
}
