package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"campuskart/internal/delivery/http/middleware"
	"campuskart/internal/delivery/http/response"
	"campuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// buyItemResponse returns the item together with the client secret the
// frontend needs to confirm the card payment.
type buyItemResponse struct {
	Item         ItemResponse `json:"item"`
	ClientSecret string       `json:"clientSecret"`
}

// ItemHandler holds dependencies for catalog and checkout handlers.
type ItemHandler struct {
	catalog  usecase.CatalogUsecase
	checkout usecase.CheckoutUsecase
	logger   *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(catalog usecase.CatalogUsecase, checkout usecase.CheckoutUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		catalog:  catalog,
		checkout: checkout,
		logger:   logger,
	}
}

// Create handles a new listing: multipart form with title, description,
// price and exactly one image upload.
func (h *ItemHandler) Create(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item price")
	}
	if title == "" || description == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Title and description are required")
	}

	input := &usecase.CreateItemInput{
		AdminID:     adminID,
		Title:       title,
		Description: description,
		Price:       price,
	}

	// A missing file is reported by the usecase as an image-required
	// error, so the form is read permissively here.
	file, src, err := openImageUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}
	if src != nil {
		defer src.Close()
		input.ImageFilename = file.Filename
		input.ImageContentType = file.Header.Get(echo.HeaderContentType)
		input.ImageBody = src
	}

	item, err := h.catalog.CreateItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newItemResponse(item), "Item created successfully")
}

// Update handles listing edits. A new image upload is optional; when
// present it replaces the stored blob.
func (h *ItemHandler) Update(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item price")
	}

	input := &usecase.UpdateItemInput{
		AdminID:     adminID,
		ItemID:      itemID,
		Title:       title,
		Description: description,
		Price:       price,
	}

	file, src, err := openImageUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}
	if src != nil {
		defer src.Close()
		input.ImageFilename = file.Filename
		input.ImageContentType = file.Header.Get(echo.HeaderContentType)
		input.ImageBody = src
	}

	item, err := h.catalog.UpdateItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item), "Item updated successfully")
}

// Delete removes one of the admin's own listings.
func (h *ItemHandler) Delete(c echo.Context) error {
	adminID, ok := principalID(c, middleware.ContextKeyAdminID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	if err := h.catalog.DeleteItem(c.Request().Context(), itemID, adminID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}

// List returns every listing with its sold state for the storefront.
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.catalog.ListItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newCatalogItemResponse(item))
	}

	return response.Success(c, http.StatusOK, out, "Items retrieved successfully")
}

// Detail returns a single listing.
func (h *ItemHandler) Detail(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	item, err := h.catalog.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item), "Item retrieved successfully")
}

// Buy checks availability and opens a payment intent for the item.
func (h *ItemHandler) Buy(c echo.Context) error {
	buyerID, ok := principalID(c, middleware.ContextKeyBuyerID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid buyer ID in token")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	output, err := h.checkout.BuyItem(c.Request().Context(), buyerID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buyItemResponse{
		Item:         newItemResponse(output.Item),
		ClientSecret: output.ClientSecret,
	}, "Payment intent created successfully")
}

// openImageUpload reads the optional "image" form file. A form without
// the file is not an error; only a broken multipart body is.
func openImageUpload(c echo.Context) (*multipart.FileHeader, io.ReadCloser, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}

		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid image upload")
	}

	src, err := file.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open image upload")
	}

	return file, src, nil
}
