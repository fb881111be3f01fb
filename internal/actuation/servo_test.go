package actuation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuantityToAngle(t *testing.T) {
	tests := []struct {
		quantity int
		want     int
	}{
		{quantity: 0, want: 0},
		{quantity: 1, want: 45},
		{quantity: 2, want: 90},
		{quantity: 3, want: 135},
		{quantity: 4, want: 180},
		{quantity: 9, want: 180}, // clamps
		{quantity: -1, want: 0},
	}

	for _, tt := range tests {
		if got := QuantityToAngle(tt.quantity); got != tt.want {
			t.Errorf("QuantityToAngle(%d) = %d, want %d", tt.quantity, got, tt.want)
		}
	}
}

func TestAngles(t *testing.T) {
	// quantity 3, two of four servos selected
	got := Angles(3, 2)
	want := [ServoCount]int{135, 135, 0, 0}
	if got != want {
		t.Fatalf("Angles(3, 2) = %v, want %v", got, want)
	}

	// selection larger than the rig caps at four
	got = Angles(5, 7)
	want = [ServoCount]int{180, 180, 180, 180}
	if got != want {
		t.Fatalf("Angles(5, 7) = %v, want %v", got, want)
	}

	// nothing selected holds everything at neutral
	if got := Angles(4, 0); got != ([ServoCount]int{}) {
		t.Fatalf("Angles(4, 0) = %v, want all zero", got)
	}
}

func TestThingSpeakUpdate(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte("42"))
	}))
	defer srv.Close()

	client := &ThingSpeakClient{
		writeKey: "testkey",
		baseURL:  srv.URL,
		http:     srv.Client(),
	}

	resp, err := client.Update(context.Background(), [ServoCount]int{135, 135, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "42" {
		t.Errorf("response = %q, want 42", resp)
	}

	want := "api_key=testkey&field1=135&field2=135&field3=0&field4=0"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestThingSpeakUpdateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &ThingSpeakClient{writeKey: "k", baseURL: srv.URL, http: srv.Client()}

	if _, err := client.Update(context.Background(), [ServoCount]int{}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestMotorClientActivate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
	}))
	defer srv.Close()

	client := &MotorClient{baseURL: srv.URL, http: srv.Client()}

	if err := client.Activate(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/run?motor=2" {
		t.Errorf("request = %q, want /run?motor=2", gotPath)
	}
}
