package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"idle_garden/internal/db"
	"idle_garden/internal/service"
)

// ws_smoke exercises the garden feed end to end: register (or reuse) a
// smoke-test account, dial /ws/garden, request a state frame and print it.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	ctx := context.Background()
	users := service.NewUserService(pool)

	u, err := users.LoginWithGoogle(ctx, &service.GoogleUser{
		GoogleID: "smoke-3001",
		Email:    "smoke@dev.local",
		Name:     "Smoke Tester",
	})
	if err != nil {
		log.Fatalf("login smoke user: %v", err)
	}

	service.InitJWT(jwtSecret)
	token, err := service.GenerateJWT(u.ID, u.GoogleID, u.Email)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	url := fmt.Sprintf("ws://localhost:%s/ws/garden?token=%s", port, token)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", url, err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"type": "state"}); err != nil {
		log.Fatalf("send state request: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Fatalf("read state frame: %v", err)
	}

	var pretty map[string]any
	if err := json.Unmarshal(data, &pretty); err != nil {
		log.Fatalf("decode state frame: %v", err)
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}
