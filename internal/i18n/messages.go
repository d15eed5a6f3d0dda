package i18n

var catalog = map[string]map[string]string{
	LocaleRU: {
		"error.bad_request":            "Некорректный запрос",
		"error.internal":               "Внутренняя ошибка сервера",
		"error.rate_limited":           "Слишком много запросов, повторите через %d сек.",
		"error.rate_limit_unavailable": "Сервис временно недоступен",

		"error.product_not_found":     "Товар не найден",
		"error.product_fetch_failed":  "Не удалось загрузить товары",
		"error.catalog_sort_invalid":  "Неизвестный способ сортировки",
		"error.price_range_invalid":   "Некорректный диапазон цен",
		"error.category_invalid":      "Неизвестная категория",

		"error.cart_fetch_failed":     "Не удалось загрузить корзину",
		"error.cart_update_failed":    "Не удалось обновить корзину",
		"error.cart_item_invalid":     "Некорректная позиция корзины",
		"error.cart_item_not_found":   "Позиция не найдена в корзине",
		"error.cart_empty":            "Корзина пуста",
		"error.product_not_available": "Товар недоступен",
		"error.product_size_invalid":  "Недоступный размер товара",
		"error.mechanism_unavailable": "Подъёмный механизм недоступен для этого товара",

		"error.promo_code_empty":        "Введите промокод",
		"error.promo_code_invalid":      "Промокод недействителен",
		"error.promo_apply_failed":      "Не удалось применить промокод",
		"error.delivery_method_invalid": "Неизвестный способ доставки",
		"error.payment_method_invalid":  "Неизвестный способ оплаты",
		"error.social_channel_invalid":  "Неизвестная соцсеть",

		"error.order_form_invalid": "Проверьте правильность заполнения формы",
		"error.checkout_failed":    "Не удалось оформить заказ",
		"error.queue_unavailable":  "Сервис оформления временно недоступен",

		"error.favorites_fetch_failed":  "Не удалось загрузить избранное",
		"error.favorites_update_failed": "Не удалось обновить избранное",

		"error.session_invalid": "Недействительная сессия",

		"validation.full_name_required": "Введите ФИО",
		"validation.phone_invalid":      "Введите корректный номер телефона",
		"validation.address_required":   "Введите адрес доставки",
		"validation.city_required":      "Введите город",
		"validation.social_required":    "Укажите ник или номер в соцсети",

		"msg.promo_applied":  "Промокод применён",
		"msg.promo_removed":  "Промокод удалён",
		"msg.order_accepted": "Заказ принят и обрабатывается",
	},
	LocaleEN: {
		"error.bad_request":            "Bad request",
		"error.internal":               "Internal server error",
		"error.rate_limited":           "Too many requests, retry in %d s.",
		"error.rate_limit_unavailable": "Service temporarily unavailable",

		"error.product_not_found":     "Product not found",
		"error.product_fetch_failed":  "Failed to load products",
		"error.catalog_sort_invalid":  "Unknown sort mode",
		"error.price_range_invalid":   "Invalid price range",
		"error.category_invalid":      "Unknown category",

		"error.cart_fetch_failed":     "Failed to load cart",
		"error.cart_update_failed":    "Failed to update cart",
		"error.cart_item_invalid":     "Invalid cart line",
		"error.cart_item_not_found":   "Cart line not found",
		"error.cart_empty":            "Cart is empty",
		"error.product_not_available": "Product is not available",
		"error.product_size_invalid":  "Product size is not available",
		"error.mechanism_unavailable": "Lifting mechanism is not available for this product",

		"error.promo_code_empty":        "Enter a promo code",
		"error.promo_code_invalid":      "Promo code is not valid",
		"error.promo_apply_failed":      "Failed to apply promo code",
		"error.delivery_method_invalid": "Unknown delivery method",
		"error.payment_method_invalid":  "Unknown payment method",
		"error.social_channel_invalid":  "Unknown social channel",

		"error.order_form_invalid": "Please review the order form",
		"error.checkout_failed":    "Failed to submit order",
		"error.queue_unavailable":  "Checkout service temporarily unavailable",

		"error.favorites_fetch_failed":  "Failed to load favorites",
		"error.favorites_update_failed": "Failed to update favorites",

		"error.session_invalid": "Invalid session",

		"validation.full_name_required": "Enter your full name",
		"validation.phone_invalid":      "Enter a valid phone number",
		"validation.address_required":   "Enter a delivery address",
		"validation.city_required":      "Enter a city",
		"validation.social_required":    "Enter your social media handle",

		"msg.promo_applied":  "Promo code applied",
		"msg.promo_removed":  "Promo code removed",
		"msg.order_accepted": "Order accepted and is being processed",
	},
}
