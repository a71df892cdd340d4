package main

import "testing"

func TestReportURL(t *testing.T) {
	cases := map[string]string{
		"http://localhost:8080":  "http://localhost:8080/reports/S1.html",
		"http://localhost:8080/": "http://localhost:8080/reports/S1.html",
		"http://host/gradebook/": "http://host/gradebook/reports/S1.html",
	}
	for endpoint, expected := range cases {
		if url := reportURL(endpoint, "/reports/S1.html"); url != expected {
			t.Fatalf("Invalid url for %q: %q, expected: %q", endpoint, url, expected)
		}
	}
}
