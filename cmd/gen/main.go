package main

import (
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.AccountCategoryModel{},
		model.SpecialtyModel{},
		model.CertificationModel{},
		model.LanguageModel{},
		model.BusinessHourModel{},
		model.DeliveryOptionModel{},
		model.PaymentMethodModel{},
		model.CategoryModel{},
		model.ConnectionModel{},
		model.SessionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
