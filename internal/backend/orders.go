package backend

import (
	"context"
	"fmt"
	"net/http"

	checkout "github.com/bloomshop/storefront/internal/checkout/domain"
	order "github.com/bloomshop/storefront/internal/order/domain"
)

type orderItemPayload struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type createOrderRequest struct {
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderItemPayload `json:"items"`
	Total         float64            `json:"total"`
}

type createOrderResponse struct {
	ID string `json:"_id"`
}

// SubmitOrder posts the paid-for draft lines to the backend and returns
// the created order's id. The token is required: the backend rejects
// anonymous order creation with 401.
func (c *Client) SubmitOrder(ctx context.Context, token string, draft checkout.OrderDraft) (string, error) {
	req := createOrderRequest{
		PaymentMethod: string(draft.Method),
		Items:         make([]orderItemPayload, 0, len(draft.Lines)),
		Total:         draft.Subtotal,
	}
	for _, line := range draft.Lines {
		req.Items = append(req.Items, orderItemPayload{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	var resp createOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/orders", token, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) OrderHistory(ctx context.Context, token string, page, limit int) (order.HistoryPage, error) {
	var resp order.HistoryPage
	path := fmt.Sprintf("/orders/my?page=%d&limit=%d", page, limit)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return order.HistoryPage{}, err
	}
	return resp, nil
}
