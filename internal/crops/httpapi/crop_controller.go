package httpapi

import (
	"bytes"
	"net/http"

	cropsDomain "green-link/internal/crops/domain"
	"green-link/internal/crops/httpapi/internal"
	"green-link/internal/crops/usecases"
	"green-link/internal/infra/httpserver"
	shareddomain "green-link/internal/shared_kernel/domain"
	"green-link/internal/shared_kernel/report"
)

const (
	createCropErrMessage = "failed to create crop"
	listCropsErrMessage  = "failed to list crops"
	getCropErrMessage    = "failed to get crop"
	updateCropErrMessage = "failed to update crop"
	deleteCropErrMessage = "failed to delete crop"
	exportCropErrMessage = "failed to export crops"
)

func NewCropController(service usecases.CropService) *CropController {
	return &CropController{
		service: service,
	}
}

var _ httpserver.Controller = &CropController{}

type CropController struct {
	service usecases.CropService
}

func (c *CropController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/crops", c.listCrops())
	router.Handle("POST /v1/crops", c.createCrop())
	router.Handle("GET /v1/crops/export", c.exportCrops())
	router.Handle("GET /v1/crops/{id}", c.getCrop())
	router.Handle("GET /v1/crops/{id}/growth", c.getCropGrowth())
	router.Handle("PUT /v1/crops/{id}", c.updateCrop())
	router.Handle("PATCH /v1/crops/{id}", c.updateCrop())
	router.Handle("DELETE /v1/crops/{id}", c.deleteCrop())
}

func (c *CropController) listCrops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := usecases.CropFilter{Query: httpserver.GetQueryParam(r, "q")}
		paginationParams, paged := httpserver.ExtractPaginationParams(r)
		if paged {
			filter.Pagination = &usecases.Pagination{
				Limit:  paginationParams.Limit,
				Offset: paginationParams.Offset(),
			}
		}

		crops, total, err := c.service.ListCrops(r.Context(), filter)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, listCropsErrMessage)
			return
		}

		responses := make([]internal.CropResponse, len(crops))
		for i, crop := range crops {
			responses[i] = c.toResponse(crop)
		}

		if paged {
			httpserver.ReplyWithPaginatedData(w, responses, total, paginationParams)
			return
		}
		httpserver.ReplyWithList(w, responses, total)
	}
}

func (c *CropController) getCrop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crop, err := c.service.GetCrop(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, getCropErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, c.toResponse(crop))
	}
}

func (c *CropController) getCropGrowth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crop, err := c.service.GetCrop(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, getCropErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGrowthResponse(c.service.GrowthOf(crop)))
	}
}

func (c *CropController) createCrop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := httpserver.DecodeRecord(r)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, createCropErrMessage)
			return
		}

		crop, err := c.service.CreateCrop(r.Context(), fields)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, createCropErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, c.toResponse(crop))
	}
}

func (c *CropController) updateCrop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := httpserver.DecodeRecord(r)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, updateCropErrMessage)
			return
		}

		crop, err := c.service.UpdateCrop(r.Context(), shareddomain.ID(r.PathValue("id")), fields)
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, updateCropErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, c.toResponse(crop))
	}
}

func (c *CropController) deleteCrop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crop, err := c.service.DeleteCrop(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			httpserver.ReplyWithDomainError(w, err, deleteCropErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, c.toResponse(crop))
	}
}

func (c *CropController) exportCrops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := report.ParseFormat(httpserver.GetQueryParam(r, "format"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var buf bytes.Buffer
		if err := c.service.ExportCrops(r.Context(), &buf, format); err != nil {
			httpserver.ReplyWithDomainError(w, err, exportCropErrMessage)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename("crops")+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func (c *CropController) toResponse(crop cropsDomain.Crop) internal.CropResponse {
	return internal.ToCropResponse(crop, c.service.GrowthOf(crop))
}

