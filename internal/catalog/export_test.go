package catalog

import (
	"bytes"
	"testing"

	"github.com/meur/blueprintlabs/internal/models"
)

func TestWriteCSV(t *testing.T) {
	rows := []models.Row{
		{Weapon: "RAM-7", Category: "Assault Rifle", Blueprint: "Fire, Tiger", Status: "RELEASED", Pool: "1", ImageBase: "/images/ram-7/Fire, Tiger"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "weapon,category,blueprint,status,pool,image_base\n" +
		"RAM-7,Assault Rifle,\"Fire, Tiger\",RELEASED,1,\"/images/ram-7/Fire, Tiger\"\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if got := buf.String(); got != "weapon,category,blueprint,status,pool,image_base\n" {
		t.Errorf("WriteCSV(nil) = %q", got)
	}
}
