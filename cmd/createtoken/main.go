package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"shiftbook.com.au/shiftbook/web/middlewares"
)

func main() {
	secret, err := base64.StdEncoding.DecodeString(os.Getenv("SHIFTBOOK_SIGNING_SECRET"))
	if err != nil {
		log.Fatal("Failed to decode signing secret:", err)
	}

	deviceID := "device-id"
	if len(os.Args) > 1 {
		deviceID = os.Args[1]
	}

	token, err := middlewares.CreateJWT(deviceID, secret, time.Hour)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
