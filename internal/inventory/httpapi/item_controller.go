package httpapi

import (
	"bytes"
	"net/http"

	"green-link/internal/infra/httpserver"
	"green-link/internal/inventory/httpapi/internal"
	"green-link/internal/inventory/usecases"
	"green-link/internal/shared_kernel/report"
)

const (
	createItemErrMessage    = "failed to create inventory item"
	listItemsErrMessage     = "failed to list inventory items"
	lowStockErrMessage      = "failed to list low stock items"
	getItemErrMessage       = "failed to get inventory item"
	updateItemErrMessage    = "failed to update inventory item"
	deleteItemErrMessage    = "failed to delete inventory item"
	exportItemsErrMessage   = "failed to export inventory items"
	invalidThresholdMessage = "threshold must be a non-negative integer"
)

func NewItemController(service usecases.ItemService) *ItemController {
	return &ItemController{
		service: service,
	}
}

var _ httpserver.Controller = &ItemController{}

type ItemController struct {
	service usecases.ItemService
}

func (c *ItemController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/inventory", c.listItems())
	router.Handle("POST /v1/inventory", c.createItem())
	router.Handle("GET /v1/inventory/low-stock", c.listLowStock())
	router.Handle("GET /v1/inventory/export", c.exportItems())
	router.Handle("GET /v1/inventory/{item_id}", c.getItem())
	router.Handle("PUT /v1/inventory/{item_id}", c.updateItem())
	router.Handle("PATCH /v1/inventory/{item_id}", c.updateItem())
	router.Handle("DELETE /v1/inventory/{item_id}", c.deleteItem())
}

func (c *ItemController) listItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := usecases.ItemFilter{Query: httpserver.GetQueryParam(r, "q")}
		paginationParams, paged := httpserver.ExtractPaginationParams(r)
		if paged {
			filter.Pagination = &usecases.Pagination{
				Limit:  paginationParams.Limit,
				Offset: paginationParams.Offset(),
			}
		}

		items, total, err := c.service.ListItems(r.Context(), filter)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, listItemsErrMessage)
			return
		}

		if paged {
			httpserver.ReplyWithPaginatedData(w, internal.ToItemResponses(items), total, paginationParams)
			return
		}
		httpserver.ReplyWithList(w, internal.ToItemResponses(items), total)
	}
}

func (c *ItemController) listLowStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threshold, err := httpserver.GetIntQueryParam(r, "threshold", usecases.DefaultThreshold)
		if err != nil || (threshold < 0 && threshold != usecases.DefaultThreshold) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidThresholdMessage)
			return
		}

		items, err := c.service.ListLowStock(r.Context(), threshold)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, lowStockErrMessage)
			return
		}

		httpserver.ReplyWithList(w, internal.ToItemResponses(items), len(items))
	}
}

func (c *ItemController) getItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := c.service.GetItem(r.Context(), r.PathValue("item_id"))
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, getItemErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToItemResponse(item))
	}
}

func (c *ItemController) createItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := httpserver.DecodeRecord(r)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, createItemErrMessage)
			return
		}

		item, err := c.service.CreateItem(r.Context(), fields)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, createItemErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToItemResponse(item))
	}
}

func (c *ItemController) updateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := httpserver.DecodeRecord(r)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, updateItemErrMessage)
			return
		}

		item, err := c.service.UpdateItem(r.Context(), r.PathValue("item_id"), fields)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, updateItemErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToItemResponse(item))
	}
}

func (c *ItemController) deleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := c.service.DeleteItem(r.Context(), r.PathValue("item_id"))
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, deleteItemErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToItemResponse(item))
	}
}

func (c *ItemController) exportItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := report.ParseFormat(httpserver.GetQueryParam(r, "format"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var buf bytes.Buffer
		if err := c.service.ExportItems(r.Context(), &buf, format); err != nil {
			httpserver.ReplyWithDomainError(w, err, exportItemsErrMessage)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename("inventory")+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
