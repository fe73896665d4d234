package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maintenix/maintenix-backend/api/responses"
	"github.com/maintenix/maintenix-backend/api/validators"
	storagesvc "github.com/maintenix/maintenix-backend/internal/storage"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"github.com/maintenix/maintenix-backend/pkg/logger"
)

// SimulateUploadImage simulates pushing a maintenance image to object storage.
func SimulateUploadImage(svc storagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage service unavailable"))
			return
		}

		var payload storagesvc.UploadInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SimulateUpload(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// SimulateListImages simulates listing the stored images for an order.
func SimulateListImages(svc storagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage service unavailable"))
			return
		}

		orderID, err := validators.ParsePathID(chi.URLParam(r, "orderId"), "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SimulateList(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// SimulateDeleteImage simulates removing an image from object storage.
func SimulateDeleteImage(svc storagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage service unavailable"))
			return
		}

		var payload storagesvc.DeleteInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SimulateDelete(r.Context(), payload.ImagePath)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// BucketInfo describes the configured simulated bucket.
func BucketInfo(svc storagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage service unavailable"))
			return
		}

		info, err := svc.BucketInfo(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, info)
	}
}
