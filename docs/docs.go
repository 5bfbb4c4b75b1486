// Package docs registers the Swagger document served at /swagger. It mirrors the
// handler annotations; run go generate to rebuild it with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {"description": "{{escape .Description}}", "title": "{{.Title}}", "contact": {}, "version": "{{.Version}}"},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/admin/stats": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Totals per collection, pending approvals and completed donations grouped by method",
				"produces": ["application/json"],
				"tags": ["admin"],
				"summary": "Dashboard figures",
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/announcements": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Newest first. Expired announcements are hidden unless active=false.",
				"produces": ["application/json"],
				"tags": ["announcements"],
				"summary": "List announcements",
				"parameters": [
					{"type": "string", "description": "Low, Normal, High or Urgent", "name": "priority", "in": "query"},
					{"type": "boolean", "description": "Hide expired announcements (default true)", "name": "active", "in": "query"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"consumes": ["multipart/form-data"],
				"produces": ["application/json"],
				"tags": ["announcements"],
				"summary": "Create an announcement",
				"parameters": [
					{"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
					{"type": "string", "description": "Content", "name": "content", "in": "formData", "required": true},
					{"type": "string", "description": "Low, Normal, High or Urgent", "name": "priority", "in": "formData"},
					{"type": "string", "description": "Expiry date", "name": "expiresAt", "in": "formData"},
					{"type": "file", "description": "Image", "name": "image", "in": "formData"}
				],
				"responses": {
					"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/announcements/{id}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Honours If-None-Match with 304",
				"produces": ["application/json"],
				"tags": ["announcements"],
				"summary": "Get an announcement",
				"parameters": [{"type": "string", "description": "Announcement ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"304": {"description": "Not Modified"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"patch": {
				"security": [{"BearerAuth": []}],
				"description": "Only the fields sent are changed",
				"consumes": ["multipart/form-data"],
				"produces": ["application/json"],
				"tags": ["announcements"],
				"summary": "Update an announcement",
				"parameters": [
					{"type": "string", "description": "Announcement ID", "name": "id", "in": "path", "required": true},
					{"type": "string", "description": "Title", "name": "title", "in": "formData"},
					{"type": "string", "description": "Content", "name": "content", "in": "formData"},
					{"type": "string", "description": "Low, Normal, High or Urgent", "name": "priority", "in": "formData"},
					{"type": "string", "description": "Expiry date", "name": "expiresAt", "in": "formData"},
					{"type": "file", "description": "Replacement image", "name": "image", "in": "formData"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"tags": ["announcements"],
				"summary": "Delete an announcement",
				"parameters": [{"type": "string", "description": "Announcement ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"204": {"description": "No Content"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/donations": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Paginated, newest first",
				"produces": ["application/json"],
				"tags": ["donations"],
				"summary": "List donations",
				"parameters": [
					{"type": "string", "description": "Cash or G-Cash", "name": "method", "in": "query"},
					{"type": "string", "description": "Completed or Refunded", "name": "status", "in": "query"},
					{"type": "string", "description": "Donor name contains", "name": "donor", "in": "query"},
					{"type": "string", "description": "Earliest date", "name": "from", "in": "query"},
					{"type": "string", "description": "Latest date", "name": "to", "in": "query"},
					{"type": "integer", "description": "Page, from 1", "name": "page", "in": "query"},
					{"type": "integer", "description": "Page size (max 100)", "name": "limit", "in": "query"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["donations"],
				"summary": "Record a donation",
				"parameters": [
					{
						"description": "Donation",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.donationRequest"}
					}
				],
				"responses": {
					"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/donations/export": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["text/csv"],
				"tags": ["donations"],
				"summary": "Export donations as CSV",
				"parameters": [
					{"type": "string", "description": "Cash or G-Cash", "name": "method", "in": "query"},
					{"type": "string", "description": "Completed or Refunded", "name": "status", "in": "query"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "file"}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/donations/import": {
			"post": {
				"security": [{"BearerAuth": []}],
				"description": "Columns: Donor Name, Amount, Method, Status, Date, Reference Number, Notes. Any invalid row rejects the whole file.",
				"consumes": ["multipart/form-data"],
				"produces": ["application/json"],
				"tags": ["donations"],
				"summary": "Import donations from CSV",
				"parameters": [{"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true}],
				"responses": {
					"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/donations/summary": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Completed donations only",
				"produces": ["application/json"],
				"tags": ["donations"],
				"summary": "Donation totals by method",
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/donations/{id}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Honours If-None-Match with 304",
				"produces": ["application/json"],
				"tags": ["donations"],
				"summary": "Get a donation",
				"parameters": [{"type": "string", "description": "Donation ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"304": {"description": "Not Modified"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"patch": {
				"security": [{"BearerAuth": []}],
				"description": "Only the fields sent are changed",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["donations"],
				"summary": "Update a donation",
				"parameters": [
					{"type": "string", "description": "Donation ID", "name": "id", "in": "path", "required": true},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.donationRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"tags": ["donations"],
				"summary": "Delete a donation",
				"parameters": [{"type": "string", "description": "Donation ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"204": {"description": "No Content"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/email/contact": {
			"post": {
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["email"],
				"summary": "Contact the organization",
				"parameters": [
					{
						"description": "Contact form",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.contactRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/email/send": {
			"post": {
				"security": [{"BearerAuth": []}],
				"description": "One message per recipient. Without userIds every approved member is emailed.",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["email"],
				"summary": "Email members",
				"parameters": [
					{
						"description": "Subject, message and optional user IDs",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.broadcastRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/events": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Events sorted by date. upcoming=true keeps events from now on.",
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "List events",
				"parameters": [
					{"type": "string", "description": "Upcoming, Ongoing, Completed or Cancelled", "name": "status", "in": "query"},
					{"type": "boolean", "description": "Only events dated from now", "name": "upcoming", "in": "query"},
					{"type": "string", "description": "Earliest date", "name": "from", "in": "query"},
					{"type": "string", "description": "Latest date", "name": "to", "in": "query"},
					{"type": "string", "description": "Search title or location", "name": "q", "in": "query"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"consumes": ["multipart/form-data"],
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Create an event",
				"parameters": [
					{"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
					{"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
					{"type": "string", "description": "Date (RFC3339 or YYYY-MM-DD)", "name": "date", "in": "formData", "required": true},
					{"type": "string", "description": "Location", "name": "location", "in": "formData", "required": true},
					{"type": "integer", "description": "Seats, 0 for unlimited", "name": "capacity", "in": "formData"},
					{"type": "file", "description": "Cover image", "name": "image", "in": "formData"}
				],
				"responses": {
					"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/events/{id}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Honours If-None-Match with 304",
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Get an event",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"304": {"description": "Not Modified"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"patch": {
				"security": [{"BearerAuth": []}],
				"description": "Only the fields sent are changed",
				"consumes": ["multipart/form-data"],
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Update an event",
				"parameters": [
					{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true},
					{"type": "string", "description": "Title", "name": "title", "in": "formData"},
					{"type": "string", "description": "Description", "name": "description", "in": "formData"},
					{"type": "string", "description": "Date (RFC3339 or YYYY-MM-DD)", "name": "date", "in": "formData"},
					{"type": "string", "description": "Location", "name": "location", "in": "formData"},
					{"type": "integer", "description": "Seats, 0 for unlimited", "name": "capacity", "in": "formData"},
					{"type": "string", "description": "Upcoming, Ongoing, Completed or Cancelled", "name": "status", "in": "formData"},
					{"type": "file", "description": "Replacement cover image", "name": "image", "in": "formData"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"description": "Also removes the event from every member",
				"tags": ["events"],
				"summary": "Delete an event",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"204": {"description": "No Content"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/events/{id}/attendees": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "List attendees",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/events/{id}/interest": {
			"post": {
				"security": [{"BearerAuth": []}],
				"description": "Idempotent",
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Mark interest in an event",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"description": "Idempotent",
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Withdraw interest in an event",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/events/{id}/register": {
			"post": {
				"security": [{"BearerAuth": []}],
				"description": "Takes a seat for the caller. Rejected when already registered or the event is full.",
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Register for an event",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["events"],
				"summary": "Cancel a registration",
				"parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "List users",
				"parameters": [
					{"type": "string", "description": "Member or Admin", "name": "role", "in": "query"},
					{"type": "boolean", "description": "Approval state", "name": "isApproved", "in": "query"},
					{"type": "string", "description": "Committee name", "name": "committee", "in": "query"},
					{"type": "string", "description": "Search name, username or email", "name": "q", "in": "query"}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users/login": {
			"post": {
				"description": "Exchanges username and password for a bearer token. Approval is not required.",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Log in",
				"parameters": [
					{
						"description": "Credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.loginRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users/me": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Honours If-None-Match with 304",
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Current user",
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"304": {"description": "Not Modified"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"patch": {
				"security": [{"BearerAuth": []}],
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Update own profile",
				"parameters": [
					{
						"description": "Profile fields",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.profileRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users/me/password": {
			"patch": {
				"security": [{"BearerAuth": []}],
				"description": "Returns a fresh bearer token",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Change own password",
				"parameters": [
					{
						"description": "Current and new password",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.passwordRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users/register": {
			"post": {
				"description": "Creates an unapproved member account and returns a bearer token",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Register a new member",
				"parameters": [
					{
						"description": "Registration details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.registerRequest"}
					}
				],
				"responses": {
					"201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users/{id}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"description": "Honours If-None-Match with 304",
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Get a user",
				"parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"304": {"description": "Not Modified"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"patch": {
				"security": [{"BearerAuth": []}],
				"description": "Admins may also change role and approval",
				"consumes": ["application/json"],
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Update a user",
				"parameters": [
					{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {"$ref": "#/definitions/controllers.adminUpdateRequest"}
					}
				],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"description": "Also removes the user from every event",
				"tags": ["users"],
				"summary": "Delete a user",
				"parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"204": {"description": "No Content"},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		},
		"/users/{id}/approve": {
			"patch": {
				"security": [{"BearerAuth": []}],
				"description": "Marks the account approved and emails the member",
				"produces": ["application/json"],
				"tags": ["users"],
				"summary": "Approve a member",
				"parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
				"responses": {
					"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
					"401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
					"403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}},
					"404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
					"500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
				}
			}
		}
	},
	"definitions": {
		"controllers.adminUpdateRequest": {
			"type": "object",
			"properties": {
				"username": {"type": "string"},
				"email": {"type": "string"},
				"name": {"type": "string"},
				"age": {"type": "integer"},
				"birthday": {"type": "string"},
				"phone": {"type": "string"},
				"address": {"type": "string"},
				"organization": {"type": "string"},
				"committee": {"type": "string"},
				"role": {"type": "string"},
				"isApproved": {"type": "boolean"}
			}
		},
		"controllers.broadcastRequest": {
			"type": "object",
			"required": ["message", "subject"],
			"properties": {"subject": {"type": "string"}, "message": {"type": "string"}, "userIds": {"type": "array", "items": {"type": "string"}}}
		},
		"controllers.contactRequest": {
			"type": "object",
			"required": ["email", "message", "name"],
			"properties": {"name": {"type": "string"}, "email": {"type": "string"}, "subject": {"type": "string"}, "message": {"type": "string"}}
		},
		"controllers.donationRequest": {
			"type": "object",
			"properties": {
				"donorName": {"type": "string"},
				"amount": {"type": "number"},
				"method": {"type": "string"},
				"status": {"type": "string"},
				"date": {"type": "string"},
				"referenceNumber": {"type": "string"},
				"notes": {"type": "string"}
			}
		},
		"controllers.loginRequest": {"type": "object", "required": ["password", "username"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
		"controllers.passwordRequest": {"type": "object", "properties": {"currentPassword": {"type": "string"}, "newPassword": {"type": "string"}}},
		"controllers.profileRequest": {
			"type": "object",
			"properties": {
				"username": {"type": "string"},
				"email": {"type": "string"},
				"name": {"type": "string"},
				"age": {"type": "integer"},
				"birthday": {"type": "string"},
				"phone": {"type": "string"},
				"address": {"type": "string"},
				"organization": {"type": "string"},
				"committee": {"type": "string"}
			}
		},
		"controllers.registerRequest": {
			"type": "object",
			"properties": {
				"username": {"type": "string"},
				"email": {"type": "string"},
				"password": {"type": "string"},
				"name": {"type": "string"},
				"age": {"type": "integer"},
				"birthday": {"type": "string"},
				"phone": {"type": "string"},
				"address": {"type": "string"},
				"organization": {"type": "string"},
				"committee": {"type": "string"}
			}
		}
	},
	"securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Youth Portal API",
	Description:      "Membership, events, announcements and donations for a youth organization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
