package main

import (
	"fmt"

	"github.com/mebel-next/internal/config"
	"github.com/mebel-next/internal/constants"
	"github.com/mebel-next/internal/logger"
	"github.com/mebel-next/internal/models"

	"github.com/shopspring/decimal"
)

func rubles(amount int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(amount))
}

func rublesPtr(amount int64) *models.Money {
	m := rubles(amount)
	return &m
}

type seedProduct struct {
	product models.Product
	sizes   []models.ProductSize
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	seeds := []seedProduct{
		{
			product: models.Product{
				Kind:            constants.ProductKindSofa,
				Slug:            "divan-oslo",
				Name:            "Диван «Осло»",
				Description:     "Компактный прямой диван в скандинавском стиле с механизмом еврокнижка.",
				PriceAmount:     rubles(45990),
				OldPriceAmount:  rublesPtr(52990),
				DiscountPercent: 13,
				Popularity:      87,
				Images:          models.StringArray{"/uploads/products/divan-oslo.jpg"},
				Tags:            models.StringArray{"скандинавский", "еврокнижка"},
				IsActive:        true,
				SortOrder:       100,
			},
		},
		{
			product: models.Product{
				Kind:        constants.ProductKindSofa,
				Slug:        "divan-uglovoy-bergen",
				Name:        "Угловой диван «Берген»",
				Description: "Просторный угловой диван с ящиком для белья и съёмными чехлами.",
				PriceAmount: rubles(78990),
				Popularity:  93,
				Images:      models.StringArray{"/uploads/products/divan-bergen.jpg"},
				Tags:        models.StringArray{"угловой", "ящик для белья"},
				IsActive:    true,
				SortOrder:   95,
			},
		},
		{
			product: models.Product{
				Kind:            constants.ProductKindSofa,
				Slug:            "divan-tokio",
				Name:            "Диван «Токио»",
				Description:     "Диван-кровать с ортопедическим матрасом и нишей для хранения.",
				PriceAmount:     rubles(56490),
				OldPriceAmount:  rublesPtr(61990),
				DiscountPercent: 9,
				Popularity:      71,
				Images:          models.StringArray{"/uploads/products/divan-tokio.jpg"},
				Tags:            models.StringArray{"диван-кровать", "ортопедический"},
				IsActive:        true,
				SortOrder:       90,
			},
		},
		{
			product: models.Product{
				Kind:                  constants.ProductKindBed,
				Slug:                  "krovat-vega",
				Name:                  "Кровать «Вега»",
				Description:           "Двуспальная кровать с мягким изголовьем, доступен подъёмный механизм.",
				PriceAmount:           rubles(38990),
				LiftingMechanismPrice: rublesPtr(5000),
				Popularity:            89,
				Images:                models.StringArray{"/uploads/products/krovat-vega.jpg"},
				Tags:                  models.StringArray{"мягкое изголовье", "подъёмный механизм"},
				IsActive:              true,
				SortOrder:             85,
			},
			sizes: []models.ProductSize{
				{Label: "140x200", PriceAmount: rubles(38990), SortOrder: 1},
				{Label: "160x200", PriceAmount: rubles(42990), SortOrder: 2},
				{Label: "180x200", PriceAmount: rubles(46990), SortOrder: 3},
			},
		},
		{
			product: models.Product{
				Kind:                  constants.ProductKindBed,
				Slug:                  "krovat-milan",
				Name:                  "Кровать «Милан»",
				Description:           "Кровать из массива сосны с реечным основанием в комплекте.",
				PriceAmount:           rubles(31490),
				OldPriceAmount:        rublesPtr(34990),
				DiscountPercent:       10,
				LiftingMechanismPrice: rublesPtr(4500),
				Popularity:            64,
				Images:                models.StringArray{"/uploads/products/krovat-milan.jpg"},
				Tags:                  models.StringArray{"массив", "сосна"},
				IsActive:              true,
				SortOrder:             80,
			},
			sizes: []models.ProductSize{
				{Label: "140x200", PriceAmount: rubles(31490), SortOrder: 1},
				{Label: "160x200", PriceAmount: rubles(34490), SortOrder: 2},
			},
		},
		{
			product: models.Product{
				Kind:        constants.ProductKindBed,
				Slug:        "krovat-aurora",
				Name:        "Кровать «Аврора»",
				Description: "Кровать с велюровой обивкой и декоративной прострочкой изголовья.",
				PriceAmount: rubles(52990),
				Popularity:  78,
				Images:      models.StringArray{"/uploads/products/krovat-aurora.jpg"},
				Tags:        models.StringArray{"велюр", "прострочка"},
				IsActive:    true,
				SortOrder:   75,
			},
			sizes: []models.ProductSize{
				{Label: "160x200", PriceAmount: rubles(52990), SortOrder: 1},
				{Label: "180x200", PriceAmount: rubles(57990), SortOrder: 2},
			},
		},
		{
			product: models.Product{
				Kind:        constants.ProductKindSofa,
				Slug:        "divan-arhiv",
				Name:        "Диван «Архив»",
				Description: "Снятая с продажи модель, оставлена для истории заказов.",
				PriceAmount: rubles(29990),
				Popularity:  12,
				Images:      models.StringArray{"/uploads/products/divan-arhiv.jpg"},
				IsActive:    false,
				SortOrder:   10,
			},
		},
	}

	for _, seed := range seeds {
		prod := seed.product
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
				continue
			}
			stdLog.Printf("Created product: %s", prod.Slug)
		} else {
			existing.Kind = prod.Kind
			existing.Name = prod.Name
			existing.Description = prod.Description
			existing.PriceAmount = prod.PriceAmount
			existing.OldPriceAmount = prod.OldPriceAmount
			existing.DiscountPercent = prod.DiscountPercent
			existing.Popularity = prod.Popularity
			existing.LiftingMechanismPrice = prod.LiftingMechanismPrice
			existing.Images = prod.Images
			existing.Tags = prod.Tags
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Select("*").Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
				continue
			}
			prod = existing
			stdLog.Printf("Updated product: %s", prod.Slug)
		}

		for _, size := range seed.sizes {
			size.ProductID = prod.ID
			var existingSize models.ProductSize
			if err := models.DB.Where("product_id = ? AND label = ?", prod.ID, size.Label).First(&existingSize).Error; err != nil {
				if err := models.DB.Create(&size).Error; err != nil {
					stdLog.Printf("Failed to create size %s for %s: %v", size.Label, prod.Slug, err)
				}
				continue
			}
			existingSize.PriceAmount = size.PriceAmount
			existingSize.SortOrder = size.SortOrder
			if err := models.DB.Save(&existingSize).Error; err != nil {
				stdLog.Printf("Failed to update size %s for %s: %v", size.Label, prod.Slug, err)
			}
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 sofas, 3 beds with size variants")
	fmt.Println("- 1 inactive archive product")
}
