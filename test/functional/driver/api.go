package driver

import (
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// APIDriver issues raw requests; steps decide what a response means.
type APIDriver struct {
	client *resty.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (d *APIDriver) GetHealthz() (*resty.Response, error) {
	return d.client.R().Get("/healthz")
}

func (d *APIDriver) CreateCrop(fields map[string]any) (*resty.Response, error) {
	return d.client.R().SetBody(fields).Post("/v1/crops")
}

func (d *APIDriver) ListCrops(query string) (*resty.Response, error) {
	return d.client.R().SetQueryParam("q", query).Get("/v1/crops")
}

func (d *APIDriver) GetCrop(id string) (*resty.Response, error) {
	return d.client.R().Get(fmt.Sprintf("/v1/crops/%s", url.PathEscape(id)))
}

func (d *APIDriver) UpdateCrop(id string, patch map[string]any) (*resty.Response, error) {
	return d.client.R().SetBody(patch).Patch(fmt.Sprintf("/v1/crops/%s", url.PathEscape(id)))
}

func (d *APIDriver) DeleteCrop(id string) (*resty.Response, error) {
	return d.client.R().Delete(fmt.Sprintf("/v1/crops/%s", url.PathEscape(id)))
}

func (d *APIDriver) ExportCrops(format string) (*resty.Response, error) {
	return d.client.R().SetQueryParam("format", format).Get("/v1/crops/export")
}

func (d *APIDriver) CreateItem(fields map[string]any) (*resty.Response, error) {
	return d.client.R().SetBody(fields).Post("/v1/inventory")
}

func (d *APIDriver) ListItems() (*resty.Response, error) {
	return d.client.R().Get("/v1/inventory")
}

func (d *APIDriver) ListLowStock(threshold string) (*resty.Response, error) {
	req := d.client.R()
	if threshold != "" {
		req.SetQueryParam("threshold", threshold)
	}
	return req.Get("/v1/inventory/low-stock")
}

func (d *APIDriver) GetItem(itemID string) (*resty.Response, error) {
	return d.client.R().Get(fmt.Sprintf("/v1/inventory/%s", url.PathEscape(itemID)))
}

func (d *APIDriver) UpdateItem(itemID string, patch map[string]any) (*resty.Response, error) {
	return d.client.R().SetBody(patch).Patch(fmt.Sprintf("/v1/inventory/%s", url.PathEscape(itemID)))
}

func (d *APIDriver) DeleteItem(itemID string) (*resty.Response, error) {
	return d.client.R().Delete(fmt.Sprintf("/v1/inventory/%s", url.PathEscape(itemID)))
}
