// Command conformance runs black-box HTTP checks against a running DealHunt
// instance. It exercises the full API surface end to end and exits non-zero
// when any check fails.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type tester struct {
	apiURL     string
	client     *http.Client
	token      string
	adminToken string
	run        int
	passed     int
	failures   []string
}

func (t *tester) logResult(name string, ok bool, details string) {
	t.run++
	if ok {
		t.passed++
		fmt.Printf("PASS %s\n", name)
		return
	}
	fmt.Printf("FAIL %s: %s\n", name, details)
	t.failures = append(t.failures, fmt.Sprintf("%s: %s", name, details))
}

// request performs one HTTP call and checks the status code. The decoded JSON
// body is returned when the check passes.
func (t *tester) request(name, method, endpoint string, expectedStatus int, body interface{}, token string) (map[string]interface{}, bool) {
	url := t.apiURL + "/" + endpoint

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.logResult(name, false, fmt.Sprintf("marshal body: %v", err))
			return nil, false
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.logResult(name, false, fmt.Sprintf("build request: %v", err))
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logResult(name, false, fmt.Sprintf("request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != expectedStatus {
		t.logResult(name, false, fmt.Sprintf("expected %d, got %d - %s", expectedStatus, resp.StatusCode, truncate(raw)))
		return nil, false
	}

	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	t.logResult(name, true, "")
	return decoded, true
}

// requestList is request for endpoints returning a JSON array.
func (t *tester) requestList(name, method, endpoint string, expectedStatus int, token string) ([]map[string]interface{}, bool) {
	req, err := http.NewRequest(method, t.apiURL+"/"+endpoint, nil)
	if err != nil {
		t.logResult(name, false, fmt.Sprintf("build request: %v", err))
		return nil, false
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logResult(name, false, fmt.Sprintf("request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != expectedStatus {
		t.logResult(name, false, fmt.Sprintf("expected %d, got %d - %s", expectedStatus, resp.StatusCode, truncate(raw)))
		return nil, false
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.logResult(name, false, fmt.Sprintf("expected JSON array: %v", err))
		return nil, false
	}
	t.logResult(name, true, "")
	return decoded, true
}

func truncate(raw []byte) string {
	s := string(raw)
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

func (t *tester) runAll() int {
	fmt.Printf("Running DealHunt conformance checks against %s\n", t.apiURL)

	t.request("API Root", http.MethodGet, "", http.StatusOK, nil, "")
	t.request("Categories", http.MethodGet, "categories", http.StatusOK, nil, "")

	// First registration in a fresh database becomes the admin; fall back to
	// login when the account already exists.
	adminCreds := map[string]string{
		"email":     "admin@dealhunt.com",
		"password":  "admin123",
		"full_name": "Admin User",
	}
	if resp, ok := t.request("Admin Registration", http.MethodPost, "auth/register", http.StatusOK, adminCreds, ""); ok {
		t.adminToken, _ = resp["access_token"].(string)
	} else {
		login := map[string]string{"email": adminCreds["email"], "password": adminCreds["password"]}
		if resp, ok := t.request("Admin Login", http.MethodPost, "auth/login", http.StatusOK, login, ""); ok {
			t.adminToken, _ = resp["access_token"].(string)
		}
	}

	userEmail := fmt.Sprintf("testuser_%d@dealhunt.com", time.Now().UnixNano())
	userCreds := map[string]string{
		"email":     userEmail,
		"password":  "TestPass123!",
		"full_name": "Test User",
	}
	if resp, ok := t.request("User Registration", http.MethodPost, "auth/register", http.StatusOK, userCreds, ""); ok {
		t.token, _ = resp["access_token"].(string)
	}
	t.request("Duplicate Registration", http.MethodPost, "auth/register", http.StatusBadRequest, userCreds, "")

	if me, ok := t.request("Current User", http.MethodGet, "auth/me", http.StatusOK, nil, t.token); ok {
		if email, _ := me["email"].(string); email != userEmail {
			t.logResult("Current User Email", false, fmt.Sprintf("expected %s, got %s", userEmail, email))
		} else {
			t.logResult("Current User Email", true, "")
		}
	}
	t.request("Tampered Token", http.MethodGet, "auth/me", http.StatusUnauthorized, nil, t.token+"x")

	if t.adminToken != "" {
		t.request("Admin Stats", http.MethodGet, "admin/stats", http.StatusOK, nil, t.adminToken)
		t.request("Seed Data", http.MethodPost, "admin/seed-data", http.StatusOK, nil, t.adminToken)
		t.request("Stats As User", http.MethodGet, "admin/stats", http.StatusForbidden, nil, t.token)
	}

	t.requestList("List Offers", http.MethodGet, "offers", http.StatusOK, "")
	if offers, ok := t.requestList("List Offers By Store", http.MethodGet, "offers?store=Amazon", http.StatusOK, ""); ok {
		for _, offer := range offers {
			if store, _ := offer["store"].(string); store != "Amazon" {
				t.logResult("Store Filter", false, fmt.Sprintf("unexpected store %q", store))
				break
			}
		}
	}
	t.requestList("Search Offers", http.MethodGet, "offers?search=iPhone", http.StatusOK, "")

	offerBody := map[string]interface{}{
		"title":               "Test Product Offer",
		"description":         "This is a test offer",
		"discount_percentage": 20,
		"original_price":      1000.0,
		"discounted_price":    800.0,
		"store":               "Amazon",
		"category":            "Electronics",
		"product_image":       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		"offer_link":          "https://amazon.com/test-product",
	}
	t.request("Create Offer As User", http.MethodPost, "offers", http.StatusForbidden, offerBody, t.token)

	var offerID string
	if resp, ok := t.request("Create Offer", http.MethodPost, "offers", http.StatusOK, offerBody, t.adminToken); ok {
		offerID, _ = resp["id"].(string)
	}
	if offerID == "" {
		fmt.Println("No offer ID, skipping CRUD flow")
		return t.summary()
	}

	t.request("Get Offer", http.MethodGet, "offers/"+offerID, http.StatusOK, nil, "")

	offerBody["title"] = "Updated Test Product Offer"
	offerBody["discount_percentage"] = 30
	t.request("Update Offer", http.MethodPut, "offers/"+offerID, http.StatusOK, offerBody, t.adminToken)
	if resp, ok := t.request("Get Updated Offer", http.MethodGet, "offers/"+offerID, http.StatusOK, nil, ""); ok {
		if title, _ := resp["title"].(string); title != "Updated Test Product Offer" {
			t.logResult("Updated Title", false, fmt.Sprintf("got %q", title))
		} else {
			t.logResult("Updated Title", true, "")
		}
	}

	t.request("Save Offer", http.MethodPost, "offers/"+offerID+"/save", http.StatusOK, nil, t.token)
	t.request("Save Offer Twice", http.MethodPost, "offers/"+offerID+"/save", http.StatusBadRequest, nil, t.token)
	if saved, ok := t.requestList("Saved Offers", http.MethodGet, "users/saved-offers", http.StatusOK, t.token); ok {
		found := false
		for _, offer := range saved {
			if id, _ := offer["id"].(string); id == offerID {
				found = true
				break
			}
		}
		t.logResult("Saved Offers Contain Offer", found, "saved list missing the offer")
	}
	t.request("Unsave Offer", http.MethodDelete, "offers/"+offerID+"/save", http.StatusOK, nil, t.token)
	t.request("Unsave Offer Again", http.MethodDelete, "offers/"+offerID+"/save", http.StatusNotFound, nil, t.token)
	t.request("Re-save Offer", http.MethodPost, "offers/"+offerID+"/save", http.StatusOK, nil, t.token)
	t.request("Unsave Before Delete", http.MethodDelete, "offers/"+offerID+"/save", http.StatusOK, nil, t.token)

	t.request("Delete Offer", http.MethodDelete, "offers/"+offerID, http.StatusOK, nil, t.adminToken)
	t.request("Get Deleted Offer", http.MethodGet, "offers/"+offerID, http.StatusNotFound, nil, "")
	t.request("Delete Missing Offer", http.MethodDelete, "offers/"+offerID, http.StatusNotFound, nil, t.adminToken)

	return t.summary()
}

func (t *tester) summary() int {
	fmt.Printf("\nResults: %d/%d checks passed\n", t.passed, t.run)
	if len(t.failures) == 0 {
		return 0
	}
	fmt.Println("Failed checks:")
	for _, f := range t.failures {
		fmt.Printf("  - %s\n", f)
	}
	return 1
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "base URL of the running instance")
	flag.Parse()

	t := &tester{
		apiURL: *baseURL + "/api",
		client: &http.Client{Timeout: 10 * time.Second},
	}
	os.Exit(t.runAll())
}
