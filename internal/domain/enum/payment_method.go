package enum

// PaymentMethod is how a room-service order is settled
type PaymentMethod string

const (
	PaymentRoomCharge PaymentMethod = "room_charge"
	PaymentCash       PaymentMethod = "cash"
	PaymentCard       PaymentMethod = "card"
)

// IsValid reports whether the method is one of the known values
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentRoomCharge, PaymentCash, PaymentCard:
		return true
	}
	return false
}

// OrDefault returns the method, falling back to room charge when unset.
// Legacy orders created before the payment field existed have no method.
func (m PaymentMethod) OrDefault() PaymentMethod {
	if m == "" {
		return PaymentRoomCharge
	}
	return m
}
