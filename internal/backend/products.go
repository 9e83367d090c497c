package backend

import (
	"context"
	"net/http"

	catalog "github.com/bloomshop/storefront/internal/catalog/domain"
)

// productPayload tolerates the image field variants seen across backend
// versions (`img` vs `imageUrl`); normalization happens here so only the
// canonical Product shape crosses into cart/checkout logic.
type productPayload struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	ImageURL string  `json:"imageUrl"`
	Image    string  `json:"image"`
	Tag      string  `json:"tag"`
}

func (p productPayload) normalize() catalog.Product {
	image := p.Image
	if image == "" {
		image = p.ImageURL
	}
	if image == "" {
		image = p.Img
	}
	return catalog.Product{ID: p.ID, Name: p.Name, Price: p.Price, Image: image, Tag: p.Tag}
}

func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var payload []productPayload
	if err := c.doJSON(ctx, http.MethodGet, "/products", "", nil, &payload); err != nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.normalize())
	}
	return products, nil
}
