package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fleetcore/payments/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	// Custom enum types must exist BEFORE auto-migrate touches the columns
	// typed with them.
	if err := createCustomTypes(db); err != nil {
		logger.Error("Failed to create custom types", zap.Error(err))
		return err
	}

	logger.Info("Running GORM auto-migrations...")
	err := db.AutoMigrate(
		&model.Customer{},
		&model.Contract{},
		&model.Invoice{},
		&model.Payment{},
		&model.PaymentCounter{},
		&model.AuditLog{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	if err := createAuditTriggers(db, logger); err != nil {
		logger.Error("Failed to create audit triggers", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createExtensions creates required PostgreSQL extensions
func createExtensions(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return nil
}

// paymentEnumTypes maps each custom Postgres enum type to its values.
var paymentEnumTypes = map[string][]string{
	"payment_method":           {"cash", "check", "bank_transfer", "credit_card", "debit_card", "digital_wallet"},
	"payment_type":             {"rental_payment", "security_deposit", "violation_fine", "maintenance_fee", "insurance_fee", "late_fine", "other"},
	"payment_status":           {"pending", "processing", "completed", "failed", "cancelled", "voided", "reversed"},
	"processing_status":        {"new", "validating", "processing", "completed", "failed"},
	"payment_transaction_type": {"receipt", "disbursement", "refund", "adjustment"},
	"allocation_status":        {"unallocated", "partially_allocated", "fully_allocated"},
	"reconciliation_status":    {"unreconciled", "matched", "reconciled", "discrepancy"},
	"late_fine_status":         {"none", "pending", "applied", "waived", "paid"},
	"invoice_type":             {"rental", "sales", "service", "maintenance"},
	"invoice_status":           {"draft", "sent", "partially_paid", "paid", "overdue", "cancelled"},
}

// createCustomTypes creates custom PostgreSQL enum types
func createCustomTypes(db *gorm.DB) error {
	for typeName, values := range paymentEnumTypes {
		var exists bool
		db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = ?)`, typeName).Scan(&exists)
		if exists {
			continue
		}

		stmt := fmt.Sprintf(`CREATE TYPE %s AS ENUM (`, typeName)
		for i, value := range values {
			if i > 0 {
				stmt += ", "
			}
			stmt += fmt.Sprintf("'%s'", value)
		}
		stmt += ")"

		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create enum type %s: %w", typeName, err)
		}
	}
	return nil
}

// createCustomIndexes creates custom indexes that GORM doesn't handle
// automatically.
func createCustomIndexes(db *gorm.DB) error {
	// The idempotency-key guarantee lives here: the application-level check
	// inside the create transaction is backstopped by this unique index.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_payment_idempotency_key ON payments (company_id, idempotency_key) WHERE idempotency_key IS NOT NULL`).Error; err != nil {
		return err
	}

	// Payment numbers are unique per company.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_payment_number_per_company ON payments (company_id, payment_number)`).Error; err != nil {
		return err
	}

	// Contract numbers are unique per company.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_contract_number_per_company ON contracts (company_id, contract_number)`).Error; err != nil {
		return err
	}

	// Speeds up the unallocated-payments follow-up views.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_payments_unallocated ON payments (company_id, created_at) WHERE allocation_status = 'unallocated'`).Error; err != nil {
		return err
	}

	return nil
}

// createAuditTriggers installs the audit trigger function and attaches it
// to the payment and contract tables so every insert/update/delete leaves
// an audit_log row.
func createAuditTriggers(db *gorm.DB, logger *zap.Logger) error {
	auditFunctionSQL := `
CREATE OR REPLACE FUNCTION audit_table_changes() RETURNS TRIGGER AS $$
DECLARE
    v_company_id UUID;
    v_record_id BIGINT;
BEGIN
    IF TG_OP = 'DELETE' THEN
        BEGIN
            EXECUTE format('SELECT ($1).company_id') INTO v_company_id USING OLD;
        EXCEPTION WHEN OTHERS THEN
            v_company_id := NULL;
        END;
        v_record_id := OLD.id;
        INSERT INTO audit_log (company_id, action, table_name, record_id, old_values)
        VALUES (v_company_id, 'DELETE', TG_TABLE_NAME, v_record_id, to_jsonb(OLD));
        RETURN OLD;
    ELSIF TG_OP = 'UPDATE' THEN
        BEGIN
            EXECUTE format('SELECT ($1).company_id') INTO v_company_id USING NEW;
        EXCEPTION WHEN OTHERS THEN
            v_company_id := NULL;
        END;
        v_record_id := NEW.id;
        INSERT INTO audit_log (company_id, action, table_name, record_id, old_values, new_values)
        VALUES (v_company_id, 'UPDATE', TG_TABLE_NAME, v_record_id, to_jsonb(OLD), to_jsonb(NEW));
        RETURN NEW;
    ELSIF TG_OP = 'INSERT' THEN
        BEGIN
            EXECUTE format('SELECT ($1).company_id') INTO v_company_id USING NEW;
        EXCEPTION WHEN OTHERS THEN
            v_company_id := NULL;
        END;
        v_record_id := NEW.id;
        INSERT INTO audit_log (company_id, action, table_name, record_id, new_values)
        VALUES (v_company_id, 'INSERT', TG_TABLE_NAME, v_record_id, to_jsonb(NEW));
        RETURN NEW;
    END IF;
END;
$$ LANGUAGE plpgsql SECURITY DEFINER;`

	if err := db.Exec(auditFunctionSQL).Error; err != nil {
		return err
	}

	tables := []string{"payments", "contracts"}
	for _, table := range tables {
		dropSQL := fmt.Sprintf(`DROP TRIGGER IF EXISTS audit_%s ON %s;`, table, table)
		if err := db.Exec(dropSQL).Error; err != nil {
			logger.Warn("Failed to drop existing trigger", zap.String("table", table), zap.Error(err))
		}

		triggerSQL := fmt.Sprintf(`
CREATE TRIGGER audit_%s
    AFTER INSERT OR UPDATE OR DELETE ON %s
    FOR EACH ROW EXECUTE FUNCTION audit_table_changes();`, table, table)
		if err := db.Exec(triggerSQL).Error; err != nil {
			return err
		}
		logger.Info("Created audit trigger", zap.String("table", table))
	}

	return nil
}
