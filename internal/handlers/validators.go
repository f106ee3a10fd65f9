package handlers

import (
	"sync"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the binding tags accounttype, normalbalance and
// entrytype to gin's validator. Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseAccountType(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("normalbalance", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseNormalBalance(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("entrytype", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseEntryType(fl.Field().String())
			return err == nil
		})
	})
}
