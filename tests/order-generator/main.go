package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/google/uuid"
)

// Идентификаторы из migrations/0002_demo_seed.sql
const buyerID = "0b6a1c7e-3f4d-4a55-9a43-5d1c2f6e8a01"

var productIDs = []string{
	"5e8f7a6b-4c3d-4e2f-8a1b-0c9d8e7f6a04",
	"6f9a8b7c-5d4e-4f3a-9b2c-1d0e9f8a7b07",
	"7a0b9c8d-6e5f-4a4b-8c3d-2e1f0a9b8c08",
}

var paymentMethods = []string{"COD", "UPI", "Card", "NetBanking"}

func randomCheckout(v *payment.Verifier) handler.PlaceOrderRequest {
	gatewayOrderID := "order_" + uuid.NewString()[:14]
	gatewayPaymentID := "pay_" + uuid.NewString()[:14]

	items := make([]handler.LineItem, 0, 3)
	for _, i := range rand.Perm(len(productIDs))[:rand.Intn(len(productIDs))+1] {
		items = append(items, handler.LineItem{Product: productIDs[i], Quantity: rand.Intn(3) + 1})
	}

	addr := handler.Address{
		Street:      fmt.Sprintf("%d MG Road", rand.Intn(200)+1),
		City:        "Bengaluru",
		State:       "Karnataka",
		Country:     "India",
		PinCode:     fmt.Sprintf("560%03d", rand.Intn(1000)),
		PhoneNumber: fmt.Sprintf("+91%010d", rand.Int63n(9999999999)),
	}

	return handler.PlaceOrderRequest{
		GatewayOrderID:   gatewayOrderID,
		GatewayPaymentID: gatewayPaymentID,
		GatewaySignature: v.Sign(gatewayOrderID, gatewayPaymentID),
		OrderData: handler.OrderData{
			Items:           items,
			ShippingAddress: addr,
			BillingAddress:  addr,
			PaymentMethod:   paymentMethods[rand.Intn(len(paymentMethods))],
		},
	}
}

func post(ctx context.Context, url string, req handler.PlaceOrderRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(middleware.HeaderUserID, buyerID)
	r.Header.Set(middleware.HeaderUserRole, "buyer")

	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	return resp.Status, nil
}

func main() {
	baseURL := env("BASE_URL", "http://localhost:8080")
	verifier := payment.NewVerifier(env("PAYMENT_SECRET", "secret"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	var last handler.PlaceOrderRequest
	for {
		select {
		case <-ticker.C:
			req := randomCheckout(verifier)
			switch n := rand.Intn(10); {
			case n == 0 && last.GatewayPaymentID != "":
				// повтор уже оплаченного заказа
				req = last
			case n == 1:
				req.GatewaySignature = verifier.Sign(req.GatewayOrderID, "forged")
			}

			status, err := post(ctx, baseURL+"/orders", req)
			if err != nil {
				log.Println("request failed:", err)
				continue
			}
			log.Println("checkout", req.GatewayPaymentID, "->", status)
			last = req
		case <-ctx.Done():
			return
		}
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
