// gcal-auth authorizes Google Calendar access for OAuth desktop credentials
// and saves the token that google_calendar.token_path points at.
//
// Usage:
//
//	go run scripts/gcal-auth/main.go -credentials google-credentials.json -token token.json
//
// Service account credentials need no token; this is only for desktop clients.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop client JSON")
	tokenPath := flag.String("token", "token.json", "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\n%q must be an OAuth desktop app credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. 브라우저에서 아래 URL을 열고 Google 계정으로 로그인하세요:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. 발급된 authorization code를 붙여넣고 Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := saveToken(*tokenPath, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}
	fmt.Printf("\n토큰 저장 완료: %s\n서버를 재시작하면 일정 내보내기가 활성화됩니다.\n", *tokenPath)
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
