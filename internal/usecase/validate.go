package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// Validator applies the entity schemas to cleaned raw records. Failure
// policy is fail-fast: the first record that breaks any rule rejects
// the whole batch. There is no partial-success mode.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the validator shared by all three entity schemas.
func NewValidator() *Validator {
	v := validator.New()

	// Report source column names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Temporal fields are validated for parseability only.
	_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimestamp(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Orders validates every cleaned order row against the order schema and
// its item-sum rule.
func (v *Validator) Orders(records []domain.RawRecord) ([]domain.Order, error) {
	log.Info().Msg("validating orders data")

	validated := make([]domain.Order, 0, len(records))
	for _, record := range records {
		var order domain.Order
		if err := decodeRecord(record, &order); err != nil {
			return nil, failRecord("order", recordKey(record, "order_id"), "decode", err)
		}
		if err := v.validate.Struct(&order); err != nil {
			return nil, failSchema("order", order.OrderID, err)
		}
		if err := order.CheckTotals(); err != nil {
			log.Error().Str("order_id", order.OrderID).Err(err).Msg("order business rule violated")
			return nil, err
		}
		validated = append(validated, order)
	}

	log.Info().Int("count", len(validated)).Msg("validated orders successfully")
	return validated, nil
}

// Transactions first enforces cross-entity amount consistency against
// the validated orders, then validates each surviving row against the
// transaction schema.
func (v *Validator) Transactions(records []domain.RawRecord, orders []domain.Order) ([]domain.Transaction, error) {
	log.Info().Msg("validating transactions data")

	matched, err := checkAmountsMatch(records, orders)
	if err != nil {
		return nil, err
	}

	validated := make([]domain.Transaction, 0, len(matched))
	for _, record := range matched {
		var transaction domain.Transaction
		if err := decodeRecord(record, &transaction); err != nil {
			return nil, failRecord("transaction", recordKey(record, "transaction_id"), "decode", err)
		}
		if err := v.validate.Struct(&transaction); err != nil {
			return nil, failSchema("transaction", transaction.TransactionID, err)
		}
		validated = append(validated, transaction)
	}

	log.Info().Int("count", len(validated)).Msg("validated transactions successfully")
	return validated, nil
}

// Chargebacks validates every cleaned chargeback row against the
// chargeback schema and its date-ordering rule.
func (v *Validator) Chargebacks(records []domain.RawRecord) ([]domain.Chargeback, error) {
	log.Info().Msg("validating chargeback data")

	validated := make([]domain.Chargeback, 0, len(records))
	for _, record := range records {
		var chargeback domain.Chargeback
		if err := decodeRecord(record, &chargeback); err != nil {
			return nil, failRecord("chargeback", recordKey(record, "transaction_id"), "decode", err)
		}
		if err := v.validate.Struct(&chargeback); err != nil {
			return nil, failSchema("chargeback", chargeback.TransactionID, err)
		}
		if err := chargeback.CheckDates(); err != nil {
			log.Error().Str("transaction_id", chargeback.TransactionID).Err(err).Msg("chargeback business rule violated")
			return nil, err
		}
		validated = append(validated, chargeback)
	}

	log.Info().Int("count", len(validated)).Msg("validated chargebacks successfully")
	return validated, nil
}

// decodeRecord coerces a raw record into its typed entity through a
// JSON round-trip, so the same tags drive both decoding and validation.
func decodeRecord(record domain.RawRecord, target any) error {
	buf, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, target)
}

func recordKey(record domain.RawRecord, field string) string {
	if key, ok := record[field].(string); ok {
		return key
	}
	return "<unknown>"
}

func failRecord(entity, key, rule string, err error) error {
	verr := &domain.ValidationError{Entity: entity, Key: key, Rule: rule, Detail: err.Error()}
	log.Error().Str(entity+"_key", key).Str("rule", rule).Err(err).Msg("record rejected")
	return verr
}

// failSchema converts the first field-level failure into the batch
// error, naming the offending column and violated constraint.
func failSchema(entity, key string, err error) error {
	rule := "schema"
	detail := err.Error()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		rule = fmt.Sprintf("%s=%s", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s(%s)", fe.Field(), fe.Tag(), fe.Param())
		}
		detail = fmt.Sprintf("field %s with value %v failed constraint %s", fe.Field(), fe.Value(), fe.Tag())
	}

	verr := &domain.ValidationError{Entity: entity, Key: key, Rule: rule, Detail: detail}
	log.Error().Str(entity+"_key", key).Str("rule", rule).Msg("schema violation")
	return verr
}
