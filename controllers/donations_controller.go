package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/utils"
)

type donationRequest struct {
	DonorName       *string  `json:"donorName"`
	Amount          *float64 `json:"amount"`
	Method          *string  `json:"method"`
	Status          *string  `json:"status"`
	Date            *string  `json:"date"`
	ReferenceNumber *string  `json:"referenceNumber"`
	Notes           *string  `json:"notes"`
}

func bindDonation(c *gin.Context) (services.DonationInput, bool) {
	var req donationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return services.DonationInput{}, false
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		badRequest(c, err.Error())
		return services.DonationInput{}, false
	}
	return services.DonationInput{
		DonorName:       req.DonorName,
		Amount:          req.Amount,
		Method:          req.Method,
		Status:          req.Status,
		Date:            date,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}, true
}

// donationFilter reads the query parameters shared by list and export.
func donationFilter(c *gin.Context) (repository.DonationFilter, bool) {
	filter := repository.DonationFilter{Donor: c.Query("donor")}

	if raw := c.Query("method"); raw != "" {
		m, ok := models.ParseDonationMethod(raw)
		if !ok {
			badRequest(c, "method must be one of [Cash G-Cash]")
			return filter, false
		}
		filter.Method = &m
	}
	if raw := c.Query("status"); raw != "" {
		st, ok := models.ParseDonationStatus(raw)
		if !ok {
			badRequest(c, "status must be one of [Completed Refunded]")
			return filter, false
		}
		filter.Status = &st
	}

	var err error
	if filter.From, err = queryDate(c, "from"); err != nil {
		badRequest(c, err.Error())
		return filter, false
	}
	if filter.To, err = queryDate(c, "to"); err != nil {
		badRequest(c, err.Error())
		return filter, false
	}
	return filter, true
}

// ---------------- LIST ----------------

// ListDonations godoc
// @Summary      List donations
// @Description  Paginated, newest first
// @Tags         donations
// @Produce      json
// @Param        method  query string false "Cash or G-Cash"
// @Param        status  query string false "Completed or Refunded"
// @Param        donor   query string false "Donor name contains"
// @Param        from    query string false "Earliest date"
// @Param        to      query string false "Latest date"
// @Param        page    query int    false "Page, from 1"
// @Param        limit   query int    false "Page size (max 100)"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations [get]
func ListDonations(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := donationFilter(c)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		page, err := donationSvc.List(ctx, filter, queryInt(c, "page", 1), queryInt(c, "limit", services.DefaultPageSize))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Page(c, "donations", page.Donations, len(page.Donations), page.Total, page.Pages, page.CurrentPage)
	}
}

// ---------------- GET ----------------

// GetDonation godoc
// @Summary      Get a donation
// @Description  Honours If-None-Match with 304
// @Tags         donations
// @Produce      json
// @Param        id path string true "Donation ID"
// @Success      200 {object} map[string]interface{}
// @Success      304 "Not Modified"
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations/{id} [get]
func GetDonation(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "donation")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		d, err := donationSvc.Get(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if utils.NotModified(c, d.ID, d.UpdatedAt) {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"donation": d})
	}
}

// ---------------- CREATE ----------------

// CreateDonation godoc
// @Summary      Record a donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request body donationRequest true "Donation"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations [post]
func CreateDonation(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		input, ok := bindDonation(c)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		d, err := donationSvc.Create(ctx, user.ID, input)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, gin.H{"donation": d})
	}
}

// ---------------- UPDATE ----------------

// UpdateDonation godoc
// @Summary      Update a donation
// @Description  Only the fields sent are changed
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        id path string true "Donation ID"
// @Param        request body donationRequest true "Fields to change"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations/{id} [patch]
func UpdateDonation(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "donation")
		if !ok {
			return
		}
		input, ok := bindDonation(c)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		d, err := donationSvc.Update(ctx, id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"donation": d})
	}
}

// ---------------- DELETE ----------------

// DeleteDonation godoc
// @Summary      Delete a donation
// @Tags         donations
// @Param        id path string true "Donation ID"
// @Success      204 "No Content"
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations/{id} [delete]
func DeleteDonation(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "donation")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		if err := donationSvc.Delete(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		utils.NoContent(c)
	}
}

// ---------------- CSV ----------------

// ImportDonations godoc
// @Summary      Import donations from CSV
// @Description  Columns: Donor Name, Amount, Method, Status, Date, Reference Number, Notes. Any invalid row rejects the whole file.
// @Tags         donations
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations/import [post]
func ImportDonations(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		fh, err := formFile(c, "file")
		if err != nil || fh == nil {
			badRequest(c, "Please upload a CSV file")
			return
		}
		file, err := fh.Open()
		if err != nil {
			respondError(c, fmt.Errorf("failed to open upload: %w", err))
			return
		}
		defer file.Close()

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		n, err := donationSvc.ImportCSV(ctx, user.ID, file)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, gin.H{"imported": n})
	}
}

// ExportDonations godoc
// @Summary      Export donations as CSV
// @Tags         donations
// @Produce      text/csv
// @Param        method  query string false "Cash or G-Cash"
// @Param        status  query string false "Completed or Refunded"
// @Success      200 {file} file
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations/export [get]
func ExportDonations(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := donationFilter(c)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		// buffered so a failure can still be reported as JSON
		var buf bytes.Buffer
		if err := donationSvc.ExportCSV(ctx, filter, &buf); err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("donations-%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}

// DonationSummary godoc
// @Summary      Donation totals by method
// @Description  Completed donations only
// @Tags         donations
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /donations/summary [get]
func DonationSummary(donationSvc *services.DonationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		stats, err := donationSvc.Summary(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"stats": stats})
	}
}
