package flipp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://backflipp.wishabi.com/flipp"

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
}

func newRequest(u string) (*http.Request, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", u, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://flipp.com/")
	return req, nil
}

// Flyers lists the active flyers for a postal code.
func Flyers(postalCode string) ([]Flyer, error) {
	params := url.Values{}
	params.Set("postal_code", postalCode)
	params.Set("locale", "en-ca")

	req, err := newRequest(baseURL + "/flyers?" + params.Encode())
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flipp status %d", resp.StatusCode)
	}

	var result FlyersResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Flyers, nil
}

// Items fetches every item of one flyer.
func Items(flyerID int) ([]Item, error) {
	req, err := newRequest(fmt.Sprintf("%s/flyers/%d", baseURL, flyerID))
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flipp status %d", resp.StatusCode)
	}

	var result FlyerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if len(result.Items) > 0 {
		return result.Items, nil
	}
	return result.SpreadItems, nil
}
