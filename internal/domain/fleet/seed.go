package fleet

import "time"

// SeedData is the fixed dataset written by the schema-seed operation
type SeedData struct {
	Projectors []Projector
	Services   []ServiceRecord
	RMAs       []RMA
	SpareParts []SparePart
}

// Seed returns the seed dataset with creation timestamps stamped at now.
// Re-running the seed rewrites the same keys with the same values, so it is
// overwrite-idempotent.
func Seed(now time.Time) SeedData {
	ts := now.UTC().Format(time.RFC3339)

	return SeedData{
		Projectors: []Projector{
			{
				SerialNumber:  "EP2250U240101",
				Model:         "Epson EB-2250U",
				Brand:         "Epson",
				Site:          "Corporate Plaza Mall",
				Location:      "Hall A - Main Screen",
				InstallDate:   "2023-06-15",
				WarrantyEnd:   "2025-06-14",
				Status:        ProjectorStatusActive,
				Condition:     ConditionGood,
				LastService:   "2024-01-15",
				NextService:   "2024-04-15",
				TotalServices: 3,
				HoursUsed:     2150,
				ExpectedLife:  10000,
				Customer:      "Corporate Plaza Management",
				Technician:    "Rajesh Kumar",
				CreatedAt:     ts,
				UpdatedAt:     ts,
			},
			{
				SerialNumber:  "PTR120240202",
				Model:         "Panasonic PT-RZ120",
				Brand:         "Panasonic",
				Site:          "Metro Convention Center",
				Location:      "Auditorium - Center Screen",
				InstallDate:   "2023-08-22",
				WarrantyEnd:   "2025-08-21",
				Status:        ProjectorStatusUnderService,
				Condition:     ConditionNeedsRepair,
				LastService:   "2024-01-18",
				NextService:   "2024-01-25",
				TotalServices: 2,
				HoursUsed:     1850,
				ExpectedLife:  20000,
				Customer:      "Metro Convention Management",
				Technician:    "Amit Singh",
				CreatedAt:     ts,
				UpdatedAt:     ts,
			},
			{
				SerialNumber:  "VPL120240303",
				Model:         "Sony VPL-FHZ120",
				Brand:         "Sony",
				Site:          "City Mall Multiplex",
				Location:      "Screen 1 - Premium Hall",
				InstallDate:   "2023-05-10",
				WarrantyEnd:   "2025-05-09",
				Status:        ProjectorStatusActive,
				Condition:     ConditionExcellent,
				LastService:   "2024-01-10",
				NextService:   "2024-04-10",
				TotalServices: 4,
				HoursUsed:     3200,
				ExpectedLife:  20000,
				Customer:      "City Mall Entertainment",
				Technician:    "Vikram Singh",
				CreatedAt:     ts,
				UpdatedAt:     ts,
			},
		},
		Services: []ServiceRecord{
			{
				ID:              "SRV-001",
				ProjectorSerial: "EP2250U240101",
				Date:            "2024-01-15",
				Type:            "Lamp Replacement",
				Technician:      "Rajesh Kumar",
				Status:          ServiceStatusCompleted,
				Notes:           "Replaced lamp ELPLP96, cleaned air filter",
				SpareParts:      []string{"ELPLP96"},
				Cost:            8500,
				Hours:           2,
				CreatedAt:       ts,
			},
			{
				ID:              "SRV-002",
				ProjectorSerial: "PTR120240202",
				Date:            "2024-01-18",
				Type:            "Urgent Repair",
				Technician:      "Amit Singh",
				Status:          ServiceStatusInProgress,
				Notes:           "Emergency repair - projector not turning on, main board issue identified",
				SpareParts:      []string{},
				Cost:            45000,
				Hours:           3,
				CreatedAt:       ts,
			},
			{
				ID:              "SRV-005",
				ProjectorSerial: "VPL120240303",
				Date:            "2024-01-10",
				Type:            "Preventive Maintenance",
				Technician:      "Vikram Singh",
				Status:          ServiceStatusCompleted,
				Notes:           "Monthly cinema maintenance, laser output checked",
				SpareParts:      []string{},
				Cost:            3000,
				Hours:           1.5,
				CreatedAt:       ts,
			},
		},
		RMAs: []RMA{
			{
				ID:                "RMA-001",
				RMANumber:         "RMA-2024-001",
				ProjectorSerial:   "PTR120240202",
				PartNumber:        "PT-RZ120-MB",
				PartName:          "Main Board",
				IssueDate:         "2024-01-15",
				Status:            RMAStatusUnderReview,
				Reason:            "Logic board failure - HDMI port not responding",
				EstimatedCost:     45000,
				WarrantyStatus:    "In Warranty",
				Technician:        "Priya Sharma",
				PhysicalCondition: "Good",
				LogicalCondition:  "Faulty",
				CreatedAt:         ts,
			},
			{
				ID:                "RMA-002",
				RMANumber:         "RMA-2024-002",
				ProjectorSerial:   "VPL120240303",
				PartNumber:        "VPL-FHZ120-LD",
				PartName:          "Laser Diode Assembly",
				IssueDate:         "2024-01-10",
				Status:            RMAStatusReplacementApproved,
				Reason:            "Reduced laser output - 60% of rated power",
				EstimatedCost:     125000,
				WarrantyStatus:    "Extended Warranty",
				Technician:        "Vikram Singh",
				PhysicalCondition: "Good",
				LogicalCondition:  "Degraded",
				CreatedAt:         ts,
			},
		},
		SpareParts: []SparePart{
			{
				ID:               "SP-001",
				PartNumber:       "ELPLP96",
				PartName:         "Replacement Lamp for Epson EB-2250U",
				Category:         "Spare Parts",
				Brand:            "Epson",
				CompatibleModels: []string{"Epson EB-2250U"},
				StockQuantity:    15,
				MinStock:         5,
				UnitCost:         8500,
				Supplier:         "Epson India",
				LastRestocked:    "2024-01-10",
				Location:         "Main Warehouse",
				Status:           PartStatusInStock,
				CreatedAt:        ts,
			},
			{
				ID:               "SP-002",
				PartNumber:       "PT-RZ120-MB",
				PartName:         "Main Board for Panasonic PT-RZ120",
				Category:         "Electronic Components",
				Brand:            "Panasonic",
				CompatibleModels: []string{"Panasonic PT-RZ120"},
				StockQuantity:    2,
				MinStock:         3,
				UnitCost:         45000,
				Supplier:         "Panasonic Service Center",
				LastRestocked:    "2024-01-05",
				Location:         "Service Center",
				Status:           PartStatusLowStock,
				CreatedAt:        ts,
			},
			{
				ID:               "SP-003",
				PartNumber:       "VPL-FHZ120-LD",
				PartName:         "Laser Diode Assembly for Sony VPL-FHZ120",
				Category:         "Optical Components",
				Brand:            "Sony",
				CompatibleModels: []string{"Sony VPL-FHZ120"},
				StockQuantity:    1,
				MinStock:         2,
				UnitCost:         125000,
				Supplier:         "Sony Professional",
				LastRestocked:    "2023-12-20",
				Location:         "Main Warehouse",
				Status:           PartStatusCriticalStock,
				CreatedAt:        ts,
			},
		},
	}
}
