// Package notify delivers store status changes to the downstream ONDC
// core service. The service layer emits StoreStatusEvent values through
// the Notifier interface; delivery is fire-and-forget from its point of
// view.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SciSaif/seller-app/entity"
)

// StoreStatusEvent describes one location's enable/disable/close state
// after a store-details update.
type StoreStatusEvent struct {
	ProviderID string
	LocationID string
	Label      string
	// Range carries the closed-window schedule, only for label "close".
	Range *entity.StoreTiming
}

type Notifier interface {
	StoreStatusChanged(ctx context.Context, ev StoreStatusEvent) error
}

// CoreClient POSTs store updates to the core service.
type CoreClient struct {
	baseURL  string
	sellerID string
	client   *http.Client
}

func NewCoreClient(baseURL, sellerID string) *CoreClient {
	return &CoreClient{
		baseURL:  baseURL,
		sellerID: sellerID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type updateDetailLocation struct {
	ID    string              `json:"id"`
	Label string              `json:"label"`
	Range *entity.StoreTiming `json:"range,omitempty"`
}

type updateDetailRequest struct {
	Seller struct {
		SellerID string `json:"seller_id"`
	} `json:"seller"`
	Provider struct {
		ProviderID string               `json:"provider_id"`
		Location   updateDetailLocation `json:"location"`
	} `json:"provider"`
}

func (c *CoreClient) StoreStatusChanged(ctx context.Context, ev StoreStatusEvent) error {
	var payload updateDetailRequest
	payload.Seller.SellerID = c.sellerID
	payload.Provider.ProviderID = ev.ProviderID
	payload.Provider.Location = updateDetailLocation{
		ID:    ev.LocationID,
		Label: ev.Label,
		Range: ev.Range,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/merchant/update_detail", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("core service returned %s", res.Status)
	}
	return nil
}
