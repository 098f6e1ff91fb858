// Demo client that walks the bank REST API: create a bank, list, update
// its location, then delete it. The server must already be running.
package main

import (
	"fmt"
	"log"
	"os"

	"bank-service/pkg/common"
)

func baseURL() string {
	if url := os.Getenv("BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080/api/banks"
}

func checkStatus(step string, status int) {
	if status < 200 || status > 299 {
		log.Fatalf("%s failed with status %d", step, status)
	}
}

func listBanks() {
	res, status, err := common.Get(baseURL())
	if err != nil {
		log.Fatal("list failed: ", err)
	}
	checkStatus("list", status)

	fmt.Println("Banks from API:")
	banks, _ := res.([]interface{})
	for _, item := range banks {
		bank := item.(map[string]interface{})
		fmt.Printf("- %v: %v (%v)\n", bank["id"], bank["name"], bank["location"])
	}
}

func createBank(name, location string) int {
	payload := map[string]string{"name": name, "location": location}
	res, status, err := common.Post(baseURL(), payload)
	if err != nil {
		log.Fatal("create failed: ", err)
	}
	checkStatus("create", status)

	bank := res.(map[string]interface{})
	fmt.Println("Created bank:", bank)
	return int(bank["id"].(float64))
}

func updateBank(id int, fields map[string]string) {
	res, status, err := common.Put(fmt.Sprintf("%s/%d", baseURL(), id), fields)
	if err != nil {
		log.Fatal("update failed: ", err)
	}
	checkStatus("update", status)
	fmt.Println("Updated bank:", res)
}

func deleteBank(id int) {
	_, status, err := common.Delete(fmt.Sprintf("%s/%d", baseURL(), id))
	if err != nil {
		log.Fatal("delete failed: ", err)
	}
	checkStatus("delete", status)
	fmt.Printf("Deleted bank with id %d\n", id)
}

func main() {
	fmt.Println("=== API Client Demo ===")

	id := createBank("Demo Bank", "Athens")
	listBanks()

	updateBank(id, map[string]string{"location": "Thessaloniki"})
	listBanks()

	deleteBank(id)
	listBanks()
}
