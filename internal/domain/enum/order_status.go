package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the status of a room-service order
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusPreparing OrderStatus = 1
	OrderStatusCompleted OrderStatus = 2
	OrderStatusCancelled OrderStatus = 3
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusPending:   "pending",
	OrderStatusPreparing: "preparing",
	OrderStatusCompleted: "completed",
	OrderStatusCancelled: "cancelled",
}

// String never panics: Scan and the int form of UnmarshalJSON accept raw
// integers, so an out-of-range value must render, not crash
func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseOrderStatus maps a wire name to its status
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch s {
	case "pending":
		return OrderStatusPending, true
	case "preparing":
		return OrderStatusPreparing, true
	case "completed":
		return OrderStatusCompleted, true
	case "cancelled":
		return OrderStatusCancelled, true
	}
	return OrderStatusPending, false
}

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

// IsFinished reports whether the order is eligible for archival
func (s OrderStatus) IsFinished() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo enforces the order lifecycle: pending -> preparing -> completed,
// with cancellation reachable from pending or preparing only
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPreparing || next == OrderStatusCompleted || next == OrderStatusCancelled
	case OrderStatusPreparing:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	default:
		return false
	}
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = OrderStatusPending
	case "preparing":
		*s = OrderStatusPreparing
	case "completed":
		*s = OrderStatusCompleted
	case "cancelled":
		*s = OrderStatusCancelled
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
