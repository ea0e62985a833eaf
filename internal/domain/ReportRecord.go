package domain

import "time"

// ReportRecord representa uma linha do relatório de vendas (shows-sales).
// Todas as métricas são opcionais porque a API omite colunas conforme o agrupamento.
type ReportRecord struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Data
	Day   *string `json:"day"`
	Month *string `json:"month"`
	Year  *int    `json:"year"`

	// Produto e categoria
	CategoryName *string `json:"category_name"`
	BrandName    *string `json:"brand_name"`
	OfferID      *string `json:"offer_id"`
	OfferName    *string `json:"offer_name"`

	// Exibições
	ByMskuShows        *int64   `json:"by_msku_shows"`
	VisibilityIndex    *string  `json:"visibility_index"`
	Shows              *int64   `json:"shows"`
	ShowsWithPromotion *int64   `json:"shows_with_promotion"`
	ShowsShare         *float64 `json:"shows_share"`

	// Cliques
	Clicks              *int64 `json:"clicks"`
	ClicksWithPromotion *int64 `json:"clicks_with_promotion"`

	// Carrinho
	ToCartConversion    *float64 `json:"to_cart_conversion"`
	ToCart              *int64   `json:"to_cart"`
	ToCartWithPromotion *int64   `json:"to_cart_with_promotion"`
	ToCartShare         *float64 `json:"to_cart_share"`

	// Pedidos
	OrderItems                         *int64   `json:"order_items"`
	OrderItemsWithPromotion            *int64   `json:"order_items_with_promotion"`
	OrderItemsTotalAmount              *int64   `json:"order_items_total_amount"`
	OrderItemsTotalAmountWithPromotion *int64   `json:"order_items_total_amount_with_promotion"`
	ToOrderConversion                  *float64 `json:"to_order_conversion"`
	OrderItemsShare                    *float64 `json:"order_items_share"`

	// Entregas
	OrderItemsDeliveredCount                               *int64 `json:"order_items_delivered_count"`
	OrderItemsDeliveredCountWithPromotion                  *int64 `json:"order_items_delivered_count_with_promotion"`
	OrderItemsDeliveredTotalAmount                         *int64 `json:"order_items_delivered_total_amount"`
	OrderItemsDeliveredTotalAmountWithPromotion            *int64 `json:"order_items_delivered_total_amount_with_promotion"`
	OrderItemsDeliveredFromOrderedCount                    *int64 `json:"order_items_delivered_from_ordered_count"`
	OrderItemsDeliveredFromOrderedTotalAmount              *int64 `json:"order_items_delivered_from_ordered_total_amount"`
	OrderItemsDeliveredFromOrderedTotalAmountWithPromotion *int64 `json:"order_items_delivered_from_ordered_total_amount_with_promotion"`

	// Cancelamentos e devoluções
	OrderItemsCanceledCount            *int64 `json:"order_items_canceled_count"`
	OrderItemsCanceledByCreatedAtCount *int64 `json:"order_items_canceled_by_created_at_count"`
	OrderItemsReturnedCount            *int64 `json:"order_items_returned_count"`
	OrderItemsReturnedByCreatedAtCount *int64 `json:"order_items_returned_by_created_at_count"`
}
