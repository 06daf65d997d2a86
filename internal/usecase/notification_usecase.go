package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"vstore-backend/internal/domain"
	"vstore-backend/pkg/utils"
)

type NotificationUsecase struct {
	orders      domain.OrderRepository
	frontendURL string
}

func NewNotificationUsecase(orders domain.OrderRepository, frontendURL string) *NotificationUsecase {
	return &NotificationUsecase{orders: orders, frontendURL: frontendURL}
}

type StatusNotification struct {
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// ComposeStatusUpdate builds the WhatsApp message for an order's current
// status plus a click-to-chat link. The server never sends anything; the
// admin UI opens the link and the operator hits send.
func (uc *NotificationUsecase) ComposeStatusUpdate(ctx context.Context, actor *domain.Staff, orderID string) (*StatusNotification, error) {
	if !domain.CanPerform(actor, domain.ActionEditDetails) {
		return nil, fmt.Errorf("%w: compose notification", domain.ErrPermissionDenied)
	}

	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	phone := utils.NormalizeWhatsAppPhone(order.Customer.MobileNumber)
	if phone == "" {
		return nil, fmt.Errorf("%w: order has no usable mobile number", domain.ErrValidation)
	}

	message := uc.composeMessage(order)
	return &StatusNotification{
		Phone:       phone,
		Message:     message,
		WhatsAppURL: "https://wa.me/" + phone + "?text=" + url.QueryEscape(message),
	}, nil
}

func (uc *NotificationUsecase) composeMessage(order *domain.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s! ", firstName(order.Customer.FullName))

	switch order.CurrentStatus {
	case domain.StatusPlaced:
		fmt.Fprintf(&sb, "Your order %s has been placed successfully.", order.ID)
	case domain.StatusConfirmed:
		fmt.Fprintf(&sb, "Your order %s is confirmed and will be packed shortly.", order.ID)
	case domain.StatusPacked:
		fmt.Fprintf(&sb, "Your order %s has been packed and is awaiting dispatch.", order.ID)
	case domain.StatusShipped:
		fmt.Fprintf(&sb, "Your order %s has been shipped.", order.ID)
		if order.CourierTrackingURL != "" {
			fmt.Fprintf(&sb, " Track the courier here: %s", order.CourierTrackingURL)
		}
	case domain.StatusOutForDelivery:
		fmt.Fprintf(&sb, "Your order %s is out for delivery", order.ID)
		if order.ExpectedDeliveryTime != "" {
			fmt.Fprintf(&sb, " and should reach you around %s", order.ExpectedDeliveryTime)
		}
		sb.WriteString(".")
		if order.BalanceAmount > 0 {
			fmt.Fprintf(&sb, " Please keep Rs.%.2f ready for payment.", order.BalanceAmount)
		}
	case domain.StatusDelivered:
		fmt.Fprintf(&sb, "Your order %s has been delivered. Thank you for shopping with us!", order.ID)
	case domain.StatusCancelled:
		fmt.Fprintf(&sb, "Your order %s has been cancelled. Reach out to us if this is unexpected.", order.ID)
	case domain.StatusReturnRequested:
		fmt.Fprintf(&sb, "We have received the return request for your order %s and will update you soon.", order.ID)
	case domain.StatusReturnApproved:
		fmt.Fprintf(&sb, "The return for your order %s has been approved. We will schedule a pickup shortly.", order.ID)
	case domain.StatusReturnRejected:
		fmt.Fprintf(&sb, "Unfortunately the return request for your order %s could not be approved.", order.ID)
	case domain.StatusPickupScheduled:
		fmt.Fprintf(&sb, "Pickup for your order %s has been scheduled", order.ID)
		if order.ReturnDetails != nil && order.ReturnDetails.PickupDate != "" {
			fmt.Fprintf(&sb, " on %s", order.ReturnDetails.PickupDate)
			if order.ReturnDetails.PickupTime != "" {
				fmt.Fprintf(&sb, " (%s)", order.ReturnDetails.PickupTime)
			}
		}
		sb.WriteString(".")
	case domain.StatusReturned:
		fmt.Fprintf(&sb, "We have received the returned items for your order %s.", order.ID)
	case domain.StatusRefundInitiated:
		fmt.Fprintf(&sb, "Your refund for order %s has been initiated and should reflect within 5-7 business days.", order.ID)
	case domain.StatusRefundCompleted:
		fmt.Fprintf(&sb, "Your refund for order %s is complete", order.ID)
		if order.ReturnDetails != nil && order.ReturnDetails.RefundMethod != "" {
			fmt.Fprintf(&sb, " via %s", order.ReturnDetails.RefundMethod)
		}
		sb.WriteString(".")
	default:
		fmt.Fprintf(&sb, "There is an update on your order %s.", order.ID)
	}

	if uc.frontendURL != "" {
		fmt.Fprintf(&sb, " Track your order anytime: %s/track/%s", strings.TrimRight(uc.frontendURL, "/"), order.ID)
	}
	return sb.String()
}

func firstName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "there"
	}
	return parts[0]
}
