// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/optakt/tuichain-seed/failure"
	"github.com/optakt/tuichain-seed/models/tuichain"
)

// Tags reported by the struct-level validators.
const (
	destinationEmpty = "destination_empty"
	amountNegative   = "amount_negative"
	amountZero       = "amount_zero"
	recipientEmpty   = "recipient_empty"
)

// Validator validates the records exchanged with the marketplace API, both
// before a request is sent and after a response is received.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator with the validation rules for all known records.
func New() *Validator {

	v := validator.New()

	// Each struct-level validator is registered for exactly one type.
	v.RegisterStructValidation(descriptorValidator, tuichain.Descriptor{})
	v.RegisterStructValidation(loanRequestValidator, tuichain.LoanRequest{})
	v.RegisterStructValidation(validationValidator, tuichain.Validation{})
	v.RegisterStructValidation(fundingValidator, tuichain.Funding{})
	v.RegisterStructValidation(paymentValidator, tuichain.Payment{})
	v.RegisterStructValidation(sellPositionValidator, tuichain.SellPosition{})

	return &Validator{validate: v}
}

// Payload validates the given record. Values that are not structs, or pointers
// to structs, are accepted without validation, so that free-form payloads can
// still be sent through the same path.
func (v *Validator) Payload(payload interface{}) error {

	if payload == nil {
		return nil
	}
	typ := reflect.TypeOf(payload)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate payload: %w", err)
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("could not validate payload: %w", err)
	}
	first := errs[0]

	return failure.InvalidPayload{
		Description: failure.NewDescription("payload validation failed",
			failure.WithString("field", first.Namespace()),
			failure.WithString("tag", first.Tag()),
		),
		Type: typ.Name(),
	}
}

func descriptorValidator(sl validator.StructLevel) {
	descriptor := sl.Current().Interface().(tuichain.Descriptor)
	if descriptor.To == (common.Address{}) {
		sl.ReportError(descriptor.To, "to", "To", destinationEmpty, "")
	}
	if descriptor.Value != nil && descriptor.Value.Sign() < 0 {
		sl.ReportError(descriptor.Value, "value", "Value", amountNegative, "")
	}
}

func loanRequestValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(tuichain.LoanRequest)
	if req.RequestedValue.Sign() <= 0 {
		sl.ReportError(req.RequestedValue, "requested_value_atto_dai", "RequestedValue", amountZero, "")
	}
	if req.RecipientAddress == (common.Address{}) {
		sl.ReportError(req.RecipientAddress, "recipient_address", "RecipientAddress", recipientEmpty, "")
	}
}

func validationValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(tuichain.Validation)
	if req.FundingFee.Sign() < 0 {
		sl.ReportError(req.FundingFee, "funding_fee_atto_dai_per_dai", "FundingFee", amountNegative, "")
	}
	if req.PaymentFee.Sign() < 0 {
		sl.ReportError(req.PaymentFee, "payment_fee_atto_dai_per_dai", "PaymentFee", amountNegative, "")
	}
}

func fundingValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(tuichain.Funding)
	if req.Value.Sign() <= 0 {
		sl.ReportError(req.Value, "value_atto_dai", "Value", amountZero, "")
	}
}

func paymentValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(tuichain.Payment)
	if req.Value.Sign() <= 0 {
		sl.ReportError(req.Value, "value_atto_dai", "Value", amountZero, "")
	}
}

func sellPositionValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(tuichain.SellPosition)
	if req.Price.Sign() <= 0 {
		sl.ReportError(req.Price, "price_atto_dai_per_token", "Price", amountZero, "")
	}
}
