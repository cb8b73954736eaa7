package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080"

	// Покупатель из migrations/0002_demo_seed.sql
	buyerID  = "0b6a1c7e-3f4d-4a55-9a43-5d1c2f6e8a01"
	sellerID = "7c2e9d41-8b1a-4f0e-b2d3-6a4c5e7f9b02"
)

type order struct {
	ID string `json:"id"`
}

func main() {
	ids := loadOrderIDs()
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(ids) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func newRequest(method, path, userID, role string) *http.Request {
	req, _ := http.NewRequest(method, baseURL+path, nil)
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Role", role)
	return req
}

func loadOrderIDs() []string {
	resp, err := http.DefaultClient.Do(newRequest(http.MethodGet, "/orders/mine", buyerID, "buyer"))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return nil
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		fmt.Println("Ошибка разбора ответа:", err)
		return nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func randomUUID() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 32)
	for i := range b {
		b[i] = hex[rand.Intn(len(hex))]
	}
	return fmt.Sprintf("%s-%s-4%s-8%s-%s", b[:8], b[8:12], b[13:16], b[17:20], b[20:32])
}

func doRequest(ids []string) {
	id := randomUUID()
	if len(ids) > 0 && rand.Intn(5) != 0 {
		id = ids[rand.Intn(len(ids))]
	}

	userID, role := buyerID, "buyer"
	if rand.Intn(2) == 0 {
		userID, role = sellerID, "seller"
	}

	req := newRequest(http.MethodGet, "/orders/"+id+"/track", userID, role)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", req.URL, "->", resp.Status)
		resp.Body.Close()
	}
}
