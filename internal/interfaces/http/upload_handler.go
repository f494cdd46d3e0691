package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/application/ingest"
	"github.com/tu-usuario/retail-sync/internal/domain"
	"github.com/tu-usuario/retail-sync/internal/domain/ingestion"
)

// UploadHandler maneja la ingesta: el endpoint JSON de ventas canónicas
// (contrato del frontend existente) y la carga directa de archivos CSV.
type UploadHandler struct {
	reconcile *ingest.ReconcileBatchUseCase
	uploadCSV *ingest.UploadCSVUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(reconcile *ingest.ReconcileBatchUseCase, uploadCSV *ingest.UploadCSVUseCase) *UploadHandler {
	return &UploadHandler{reconcile: reconcile, uploadCSV: uploadCSV}
}

// UploadSales godoc
// @Summary      Ingestar un lote de ventas canónicas
// @Description  Reconcilia las ventas contra tiendas/productos (creando los
//               faltantes), inserta los hechos de venta y descuenta inventario.
// @Tags         upload
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadRequest  true  "sales: lote canónico en orden"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /api/upload [post]
func (h *UploadHandler) UploadSales(c *fiber.Ctx) error {
	var req dto.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}

	if err := h.reconcile.Reconcile(c.Context(), req.Sales); err != nil {
		return uploadError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sales processed successfully."})
}

// UploadCSV godoc
// @Summary      Cargar un archivo CSV de punto de venta
// @Description  Corre el pipeline completo: guarda anti re-carga, parseo,
//               detección de formato (A o B), validación, duplicados
//               intra-lote, normalización y reconciliación.
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo CSV"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /api/upload/csv [post]
func (h *UploadHandler) UploadCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Missing file in form field 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Could not read uploaded file"})
	}
	defer file.Close()

	err = h.uploadCSV.Process(c.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return uploadError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sales processed successfully."})
}

// LastUpload godoc
// @Summary      Último archivo aceptado
// @Description  Estado persistido de la guarda anti re-carga; el formulario lo
//               lee una vez al montar.
// @Tags         upload
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LastUploadResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/upload/last [get]
func (h *UploadHandler) LastUpload(c *fiber.Ctx) error {
	record, err := h.uploadCSV.LastUpload(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "No uploads yet"})
	}
	return c.JSON(dto.LastUploadResponse{
		FileName:   record.FileName,
		FileSize:   record.FileSize,
		UploadedAt: record.UploadedAt,
	})
}

// uploadError mapea los errores del pipeline al contrato {message}:
// 400 para lote rechazado (formato, duplicados, campo faltante, archivo
// repetido), 500 para fallas del almacén.
func uploadError(c *fiber.Ctx, err error) error {
	var formatErr *ingestion.FormatError
	var dupErr *ingestion.DuplicateBatchError
	var fieldErr *ingest.FieldError

	switch {
	case errors.Is(err, domain.ErrFileRepeated):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "This file has already been uploaded. Select another file",
		})
	case errors.As(err, &formatErr), errors.As(err, &dupErr), errors.As(err, &fieldErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("falla de ingesta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
}
