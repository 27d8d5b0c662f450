// Package view implements the list/detail controllers behind the CLI
// screens: fetch a collection, filter it, and mutate through the backend
// with a re-fetch after every change. Nothing here is authoritative; the
// controllers hold a UI-local mirror of the last fetch.
package view

import (
	"strings"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/internal/i18n"
)

// Badge is a presentational (label, color, icon) tuple for an enum value
type Badge struct {
	Label string
	Color string
	Icon  string
}

type badgeStyle struct {
	color string
	icon  string
}

var statusStyles = map[domain.OrderStatus]badgeStyle{
	domain.OrderStatusPendingPayment: {color: "yellow", icon: "clock"},
	domain.OrderStatusProcessing:     {color: "blue", icon: "refresh-cw"},
	domain.OrderStatusConfirmed:      {color: "green", icon: "check-circle"},
	domain.OrderStatusShipped:        {color: "purple", icon: "truck"},
	domain.OrderStatusDelivered:      {color: "green", icon: "check-circle"},
	domain.OrderStatusCancelled:      {color: "red", icon: "alert-circle"},
	domain.OrderStatusRefunded:       {color: "gray", icon: "refresh-cw"},
}

// StatusBadge maps an order status to its badge. Unrecognized values get
// a fallback badge carrying the raw status string; they must render, not
// crash or hide the row.
func StatusBadge(lang domain.Language, status domain.OrderStatus) Badge {
	style, ok := statusStyles[status]
	if !ok {
		return Badge{Label: string(status), Color: "gray", Icon: "alert-circle"}
	}
	label, ok := i18n.T(lang).OrderStatuses[status]
	if !ok {
		label = string(status)
	}
	return Badge{Label: label, Color: style.color, Icon: style.icon}
}

// lowStockThreshold is the quantity below which a product is flagged
const lowStockThreshold = 10

// StockBadge maps a product's inventory state to its badge
func StockBadge(p *domain.Product) Badge {
	if !p.InStock {
		return Badge{Label: "Out of Stock", Color: "red", Icon: "alert-triangle"}
	}
	if p.StockQuantity < lowStockThreshold {
		return Badge{Label: "Low Stock", Color: "orange", Icon: "alert-triangle"}
	}
	return Badge{Label: "In Stock", Color: "green", Icon: "package"}
}

// SegmentBadge maps a customer segment to its badge, falling back to the
// raw value for unrecognized segments
func SegmentBadge(segment domain.CustomerSegment) Badge {
	switch segment {
	case domain.SegmentNew:
		return Badge{Label: "New", Color: "blue", Icon: "user"}
	case domain.SegmentRegular:
		return Badge{Label: "Regular", Color: "green", Icon: "user-check"}
	case domain.SegmentVIP:
		return Badge{Label: "VIP", Color: "gold", Icon: "star"}
	default:
		return Badge{Label: string(segment), Color: "gray", Icon: "user"}
	}
}

// matchAny reports whether term is a case-insensitive substring of any
// of the fields. An empty term matches everything.
func matchAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// ConfirmFunc answers a destructive confirmation prompt. The controller
// issues no network call when it returns false.
type ConfirmFunc func(prompt string) bool

// DeleteResult reports the outcome of a delete flow so the presentation
// layer can decide how to surface it
type DeleteResult struct {
	Confirmed bool
	Deleted   bool
}
