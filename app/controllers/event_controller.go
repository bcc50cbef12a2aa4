package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/runtix/runtix/app/models"
	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/cache"
	"github.com/runtix/runtix/internal/pkg/usercontext"
)

const (
	citiesCacheKey = "events:cities"
	citiesCacheTTL = 5 * time.Minute
)

type createEventRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Location    string  `json:"location" validate:"required,max=150"`
	MapLocation string  `json:"map_location" validate:"required,max=255"`
	RouteMapURL string  `json:"route_map_url" validate:"omitempty,url,max=255"`
	Category    string  `json:"category" validate:"oneof=5K 10K Marathon"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee" validate:"gte=0"`
}

type editEventRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Location    *string  `json:"location" validate:"omitempty,max=150"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description"`
	Fee         *float64 `json:"fee" validate:"omitempty,gte=0"`
}

// HandleListEvents returns a filtered, paginated event listing.
func HandleListEvents(c *fiber.Ctx) error {
	filter := repository.EventFilter{
		City:     c.Query("city"),
		Category: c.Query("category"),
		Date:     c.Query("date"),
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	events, total, err := repository.GetGlobalFactory().GetEventRepository().List(filter, offset, limit)
	if err != nil {
		log.Printf("Failed to list events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query error"})
	}

	return c.JSON(fiber.Map{
		"events": events,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// HandleCreateEvent creates an event for the authenticated, verified
// organizer. Verification is enforced by middleware.
func HandleCreateEvent(c *fiber.Ctx) error {
	var req createEventRequest
	if err := parseAndValidate(c, &req); err != nil {
		return validationErrorResponse(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return validationErrorResponse(c, err)
	}

	event := &models.Event{
		Name:        req.Name,
		Location:    req.Location,
		MapLocation: req.MapLocation,
		RouteMapURL: req.RouteMapURL,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
		Fee:         req.Fee,
		CreatedBy:   usercontext.GetUserID(c),
	}

	if err := repository.GetGlobalFactory().GetEventRepository().Create(event); err != nil {
		log.Printf("Failed to create event: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	// new locations invalidate the cached city list
	if err := cache.Delete(citiesCacheKey); err != nil {
		log.Printf("Failed to invalidate cities cache: %v", err)
	}

	return c.JSON(fiber.Map{"message": "Event created successfully", "eventId": event.ID})
}

// HandleEditEvent partially updates an event. Ownership is enforced by
// middleware.
func HandleEditEvent(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("eventId")
	if err != nil || eventID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	var req editEventRequest
	if err := parseAndValidate(c, &req); err != nil {
		return validationErrorResponse(c, err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Fee != nil {
		fields["fee"] = *req.Fee
	}

	if err := repository.GetGlobalFactory().GetEventRepository().UpdatePartial(uint(eventID), fields); err != nil {
		log.Printf("Failed to update event %d: %v", eventID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
	}

	if req.Location != nil {
		if err := cache.Delete(citiesCacheKey); err != nil {
			log.Printf("Failed to invalidate cities cache: %v", err)
		}
	}

	return c.JSON(fiber.Map{"message": "Event updated successfully"})
}

// HandleMyEvents lists events created by a user.
func HandleMyEvents(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	events, err := repository.GetGlobalFactory().GetEventRepository().GetByCreator(uint(userID))
	if err != nil {
		log.Printf("Failed to fetch events for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch events"})
	}

	return c.JSON(events)
}

// HandleListCities returns the distinct event locations, cached in Redis.
func HandleListCities(c *fiber.Ctx) error {
	if cached, err := cache.Get(citiesCacheKey); err == nil && cached != "" {
		var cities []string
		if err := json.Unmarshal([]byte(cached), &cities); err == nil {
			return c.JSON(cities)
		}
	}

	cities, err := repository.GetGlobalFactory().GetEventRepository().DistinctLocations()
	if err != nil {
		log.Printf("Failed to fetch cities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch cities"})
	}

	if encoded, err := json.Marshal(cities); err == nil {
		if err := cache.Set(citiesCacheKey, encoded, citiesCacheTTL); err != nil {
			log.Printf("Failed to cache cities: %v", err)
		}
	}

	return c.JSON(cities)
}
