package domain

import "testing"

func TestOrderStatus_Deliverable(t *testing.T) {
	t.Parallel()

	if !StatusDeliveringCourier.Deliverable() {
		t.Fatal("own-courier delivery status must be deliverable")
	}
	if !StatusDeliveringYandex.Deliverable() {
		t.Fatal("external-courier delivery status must be deliverable")
	}
	if StatusDelivered.Deliverable() {
		t.Fatal("delivered order is not deliverable")
	}
	if OrderStatus("new").Deliverable() {
		t.Fatal("unrelated status is not deliverable")
	}
}

func TestDecision_Valid(t *testing.T) {
	t.Parallel()

	if !DecisionDeliver.Valid() || !DecisionReturn.Valid() {
		t.Fatal("known decisions must be valid")
	}
	if Decision("MAYBE").Valid() {
		t.Fatal("unknown decision must be invalid")
	}
}

func TestOrderSnapshot_SenderName(t *testing.T) {
	t.Parallel()

	o := OrderSnapshot{LastName: "Петров", FirstName: "Пётр"}
	if got := o.SenderName(); got != "Петров Пётр" {
		t.Fatalf("unexpected sender name %q", got)
	}
}
