package mcp

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// lineItemProperties returns the schema properties shared by line item
// create and update payloads.
func lineItemProperties() map[string]any {
	return map[string]any{
		"item_category": map[string]any{
			"type":        "string",
			"description": "Item category; categories containing \"Pipe\" derive spools from pipe length",
		},
		"customer_material_number": map[string]any{
			"type":        "string",
			"description": "Customer material number",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Line item description",
		},
		"quantity": map[string]any{
			"type":        "integer",
			"description": "Ordered quantity",
		},
		"pipe_length": map[string]any{
			"type":        "number",
			"description": "Total pipe length in meters; spool count is ceil(pipe_length / 12)",
		},
		"uom": map[string]any{
			"type":        "string",
			"description": "Unit of measure",
		},
		"delivery_date": map[string]any{
			"type":        "string",
			"description": "Contractual delivery date (YYYY-MM-DD)",
		},
		"drawing_no": map[string]any{
			"type":        "string",
			"description": "Drawing number",
		},
		"drawing_rev": map[string]any{
			"type":        "string",
			"description": "Drawing revision",
		},
		"size": map[string]any{
			"type":        "string",
			"description": "Nominal pipe size",
		},
		"wt": map[string]any{
			"type":        "string",
			"description": "Wall thickness",
		},
		"material_grade": map[string]any{
			"type":        "string",
			"description": "Base material grade",
		},
		"cra_material": map[string]any{
			"type":        "string",
			"description": "Corrosion resistant alloy material",
		},
		"overlay_thickness": map[string]any{
			"type":        "string",
			"description": "Cladding overlay thickness",
		},
		"hydrotest_pressure": map[string]any{
			"type":        "string",
			"description": "Hydrotest pressure",
		},
		"painting_spec": map[string]any{
			"type":        "string",
			"description": "Painting specification",
		},
		"wps_number": map[string]any{
			"type":        "string",
			"description": "Welding procedure specification number",
		},
		"ref_itp_number": map[string]any{
			"type":        "string",
			"description": "Reference inspection and test plan number",
		},
		"unit_price": map[string]any{
			"type":        "string",
			"description": "Unit price as a decimal string, e.g. \"1250.50\"",
		},
		"currency": map[string]any{
			"type":        "string",
			"description": "Price currency code",
		},
	}
}

func idOnlySchema(desc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": desc,
			},
		},
		"required": []string{"id"},
	}
}

func emptySchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	lineItemCreateProps := lineItemProperties()
	lineItemCreateProps["po_id"] = map[string]any{
		"type":        "string",
		"description": "Parent purchase order ID",
	}
	lineItemCreateProps["project_id"] = map[string]any{
		"type":        "string",
		"description": "Parent project ID",
	}

	lineItemUpdateProps := lineItemProperties()
	lineItemUpdateProps["id"] = map[string]any{
		"type":        "string",
		"description": "Line item ID",
	}

	return []ToolDefinition{
		// Projects
		{
			Name:        "create_project",
			Description: "Create a new fabrication project; the sequential project ID is auto-generated",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Project display name",
					},
					"project_type": map[string]any{
						"type":        "string",
						"description": "Project type, e.g. Cladding",
					},
					"date": map[string]any{
						"type":        "string",
						"description": "Project date (YYYY-MM-DD)",
					},
					"plant": map[string]any{
						"type":        "string",
						"description": "Plant code",
					},
					"customer": map[string]any{
						"type":        "string",
						"description": "Customer name",
					},
					"end_user": map[string]any{
						"type":        "string",
						"description": "End user name",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "update_project",
			Description: "Update fields of an existing project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"name":         map[string]any{"type": "string"},
					"project_type": map[string]any{"type": "string"},
					"date":         map[string]any{"type": "string"},
					"plant":        map[string]any{"type": "string"},
					"customer":     map[string]any{"type": "string"},
					"end_user":     map[string]any{"type": "string"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_project",
			Description: "Delete a project and everything under it (POs, line items, spools, documents)",
			InputSchema: idOnlySchema("Project ID"),
		},
		{
			Name:        "get_project",
			Description: "Get details for a specific project",
			InputSchema: idOnlySchema("Project ID"),
		},
		{
			Name:        "list_projects",
			Description: "List all projects",
			InputSchema: emptySchema(),
		},

		// Purchase orders
		{
			Name:        "create_purchase_order",
			Description: "Create a purchase order under a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Parent project ID",
					},
					"po_number": map[string]any{
						"type":        "string",
						"description": "Customer PO number",
					},
					"po_date": map[string]any{
						"type":        "string",
						"description": "PO date (YYYY-MM-DD)",
					},
					"po_rev": map[string]any{
						"type":        "string",
						"description": "PO revision",
					},
					"po_tags": map[string]any{
						"type":        "array",
						"description": "Free-form PO tags",
						"items":       map[string]any{"type": "string"},
					},
					"bank_assignments": map[string]any{
						"type":        "array",
						"description": "Assigned bank names",
						"items":       map[string]any{"type": "string"},
					},
					"contacts": map[string]any{
						"type":        "array",
						"description": "PO contact persons",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":  map[string]any{"type": "string"},
								"email": map[string]any{"type": "string"},
								"phone": map[string]any{"type": "string"},
							},
						},
					},
				},
				"required": []string{"project_id", "po_number"},
			},
		},
		{
			Name:        "update_purchase_order",
			Description: "Update fields of an existing purchase order",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Purchase order ID",
					},
					"po_number": map[string]any{"type": "string"},
					"po_date":   map[string]any{"type": "string"},
					"po_rev":    map[string]any{"type": "string"},
					"po_tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"bank_assignments": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"contacts": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":  map[string]any{"type": "string"},
								"email": map[string]any{"type": "string"},
								"phone": map[string]any{"type": "string"},
							},
						},
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_purchase_order",
			Description: "Delete a purchase order and its line items and spools",
			InputSchema: idOnlySchema("Purchase order ID"),
		},
		{
			Name:        "get_purchase_order",
			Description: "Get details for a specific purchase order",
			InputSchema: idOnlySchema("Purchase order ID"),
		},
		{
			Name:        "list_purchase_orders",
			Description: "List purchase orders, optionally filtered by project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Filter by project ID",
					},
				},
			},
		},

		// Line items
		{
			Name:        "create_line_items",
			Description: "Create a batch of PO line items; pipe categories automatically derive spools at one spool per 12 m",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"items": map[string]any{
						"type":        "array",
						"description": "Line items to create in one atomic batch",
						"items": map[string]any{
							"type":       "object",
							"properties": lineItemCreateProps,
							"required":   []string{"po_id", "project_id", "item_category"},
						},
					},
				},
				"required": []string{"items"},
			},
		},
		{
			Name:        "update_line_item",
			Description: "Update fields of a line item; existing spools are never regenerated by an edit",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": lineItemUpdateProps,
				"required":   []string{"id"},
			},
		},
		{
			Name:        "delete_line_item",
			Description: "Delete a line item and its derived spools",
			InputSchema: idOnlySchema("Line item ID"),
		},
		{
			Name:        "get_line_item",
			Description: "Get details for a specific line item",
			InputSchema: idOnlySchema("Line item ID"),
		},
		{
			Name:        "list_line_items",
			Description: "List line items, optionally filtered by project or purchase order",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Filter by project ID",
					},
					"po_id": map[string]any{
						"type":        "string",
						"description": "Filter by purchase order ID",
					},
				},
			},
		},

		// Spools
		{
			Name:        "get_spool",
			Description: "Get details for a specific spool",
			InputSchema: idOnlySchema("Spool ID"),
		},
		{
			Name:        "list_spools",
			Description: "List spools with optional filters",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Filter by project ID",
					},
					"po_id": map[string]any{
						"type":        "string",
						"description": "Filter by purchase order ID",
					},
					"line_item_id": map[string]any{
						"type":        "string",
						"description": "Filter by parent line item ID",
					},
					"status": map[string]any{
						"type":        "string",
						"description": "Filter by status",
						"enum":        []string{"Pending Cladding", "Cladded - Ready for Assembly"},
					},
					"sage_coded_only": map[string]any{
						"type":        "boolean",
						"description": "Only spools that already carry a SAGE code",
					},
				},
			},
		},
		{
			Name:        "update_spool",
			Description: "Update traceability fields of a spool (heat number, cutting sheet, MTR, MIN, description)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Spool ID",
					},
					"heat_number":          map[string]any{"type": "string"},
					"cutting_sheet_number": map[string]any{"type": "string"},
					"mtr_number":           map[string]any{"type": "string"},
					"min_number":           map[string]any{"type": "string"},
					"description":          map[string]any{"type": "string"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_spool",
			Description: "Delete a spool",
			InputSchema: idOnlySchema("Spool ID"),
		},
		{
			Name:        "complete_cladding",
			Description: "Mark a spool as cladded; mints its SAGE code (replacing any prior one) and moves it to Cladded - Ready for Assembly",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"spool_id": map[string]any{
						"type":        "string",
						"description": "Spool ID",
					},
				},
				"required": []string{"spool_id"},
			},
		},

		// Assembly joints
		{
			Name:        "create_assembly_joint",
			Description: "Create an assembly joint between two SAGE-coded components",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"component1": map[string]any{
						"type":        "string",
						"description": "SAGE code of the first component",
					},
					"component2": map[string]any{
						"type":        "string",
						"description": "SAGE code of the second component",
					},
					"size":     map[string]any{"type": "string"},
					"wt":       map[string]any{"type": "string"},
					"sequence": map[string]any{"type": "string"},
				},
				"required": []string{"component1", "component2"},
			},
		},
		{
			Name:        "update_assembly_joint",
			Description: "Update fields of an assembly joint",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Joint ID",
					},
					"component1": map[string]any{"type": "string"},
					"component2": map[string]any{"type": "string"},
					"size":       map[string]any{"type": "string"},
					"wt":         map[string]any{"type": "string"},
					"sequence":   map[string]any{"type": "string"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_assembly_joint",
			Description: "Delete an assembly joint",
			InputSchema: idOnlySchema("Joint ID"),
		},
		{
			Name:        "get_assembly_joint",
			Description: "Get details for a specific assembly joint",
			InputSchema: idOnlySchema("Joint ID"),
		},
		{
			Name:        "list_assembly_joints",
			Description: "List all assembly joints",
			InputSchema: emptySchema(),
		},

		// NMR documents
		{
			Name:        "create_nmr",
			Description: "Create an NMR drawing approval document linking one or more line items",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Parent project ID",
					},
					"po_id": map[string]any{
						"type":        "string",
						"description": "Related purchase order ID",
					},
					"drawing_number": map[string]any{
						"type":        "string",
						"description": "Drawing number; unique ignoring case and surrounding whitespace",
					},
					"drawing_revision": map[string]any{
						"type":        "string",
						"description": "Starting revision letter (defaults to A)",
					},
					"drawing_title": map[string]any{"type": "string"},
					"spec":          map[string]any{"type": "string"},
					"remarks":       map[string]any{"type": "string"},
					"line_items": map[string]any{
						"type":        "array",
						"description": "Line items covered by this drawing; each needs a product",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"line_item_id": map[string]any{
									"type":        "string",
									"description": "PO line item ID",
								},
								"product_id": map[string]any{
									"type":        "string",
									"description": "Product master record ID",
								},
							},
							"required": []string{"line_item_id", "product_id"},
						},
					},
				},
				"required": []string{"project_id", "drawing_number", "line_items"},
			},
		},
		{
			Name:        "update_nmr",
			Description: "Update an NMR document; locked documents (approved or code 4/D) reject edits",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "NMR document ID",
					},
					"drawing_number":   map[string]any{"type": "string"},
					"drawing_revision": map[string]any{"type": "string"},
					"drawing_title":    map[string]any{"type": "string"},
					"spec":             map[string]any{"type": "string"},
					"remarks":          map[string]any{"type": "string"},
					"line_items": map[string]any{
						"type":        "array",
						"description": "Replacement line item links",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"line_item_id": map[string]any{"type": "string"},
								"product_id":   map[string]any{"type": "string"},
							},
							"required": []string{"line_item_id", "product_id"},
						},
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_nmr",
			Description: "Delete an NMR document and release its line item links",
			InputSchema: idOnlySchema("NMR document ID"),
		},
		{
			Name:        "get_nmr",
			Description: "Get an NMR document with its line items and revision history",
			InputSchema: idOnlySchema("NMR document ID"),
		},
		{
			Name:        "list_nmrs",
			Description: "List NMR documents with optional filters",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Filter by project ID",
					},
					"po_id": map[string]any{
						"type":        "string",
						"description": "Filter by purchase order ID",
					},
					"statuses": map[string]any{
						"type":        "array",
						"description": "Filter by document status",
						"items": map[string]any{
							"type": "string",
							"enum": []string{"DRAFT", "SUBMITTED", "APPROVED", "PENDING-REV0", "CODE-2", "CODE-3", "CODE-4", "CODE-D"},
						},
					},
				},
			},
		},
		{
			Name:        "submit_nmr",
			Description: "Submit a draft NMR document for client review",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "NMR document ID",
					},
					"submission_date": map[string]any{
						"type":        "string",
						"description": "Submission date (YYYY-MM-DD, defaults to today)",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "record_nmr_response",
			Description: "Record the client response code for a submitted NMR document (1 approves, 2/3 bump the revision for resubmission, 4/D close it)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "NMR document ID",
					},
					"code": map[string]any{
						"type":        "string",
						"description": "Client response code",
						"enum":        []string{"1", "2", "3", "4", "D"},
					},
					"return_date": map[string]any{
						"type":        "string",
						"description": "Client return date (YYYY-MM-DD, defaults to today)",
					},
					"comment": map[string]any{
						"type":        "string",
						"description": "Client comment",
					},
				},
				"required": []string{"id", "code"},
			},
		},
		{
			Name:        "submit_nmr_rev0",
			Description: "Submit the Rev 0 issue of a code-1 approved document, completing the approval cycle",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "NMR document ID",
					},
					"submission_date": map[string]any{
						"type":        "string",
						"description": "Submission date (YYYY-MM-DD, defaults to today)",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "reset_nmr_to_draft",
			Description: "Reset an NMR document back to DRAFT so it can be edited and resubmitted",
			InputSchema: idOnlySchema("NMR document ID"),
		},

		// JIS quality routing
		{
			Name:        "ensure_jis_routing",
			Description: "Create the standard JIS inspection routing for a cladded spool if it does not exist yet",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"spool_id": map[string]any{
						"type":        "string",
						"description": "Spool ID (must be cladded)",
					},
				},
				"required": []string{"spool_id"},
			},
		},
		{
			Name:        "record_jis_action",
			Description: "Record an inspector action on a JIS operation (START, FINISH or SKIP)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"operation_id": map[string]any{
						"type":        "string",
						"description": "JIS operation ID",
					},
					"action": map[string]any{
						"type":        "string",
						"description": "Action to record",
						"enum":        []string{"START", "FINISH", "SKIP"},
					},
					"inspector_id": map[string]any{
						"type":        "string",
						"description": "Inspector badge ID",
					},
				},
				"required": []string{"operation_id", "action", "inspector_id"},
			},
		},
		{
			Name:        "add_jis_operation",
			Description: "Add a custom operation to a target's JIS routing",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"target_id": map[string]any{
						"type":        "string",
						"description": "Spool or assembly the routing belongs to",
					},
					"process_name": map[string]any{
						"type":        "string",
						"description": "Process name, e.g. UT, PT, Final Visual",
					},
					"description": map[string]any{"type": "string"},
					"sequence": map[string]any{
						"type":        "integer",
						"description": "Position within the routing (appended when omitted)",
					},
				},
				"required": []string{"target_id", "process_name"},
			},
		},
		{
			Name:        "update_jis_operation",
			Description: "Update a JIS operation's process name, description or sequence",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "JIS operation ID",
					},
					"process_name": map[string]any{"type": "string"},
					"description":  map[string]any{"type": "string"},
					"sequence":     map[string]any{"type": "integer"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_jis_operation",
			Description: "Delete a JIS operation",
			InputSchema: idOnlySchema("JIS operation ID"),
		},
		{
			Name:        "list_jis_operations",
			Description: "List JIS operations, optionally filtered by target or status",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"target_id": map[string]any{
						"type":        "string",
						"description": "Filter by spool or assembly ID",
					},
					"statuses": map[string]any{
						"type":        "array",
						"description": "Filter by operation status",
						"items": map[string]any{
							"type": "string",
							"enum": []string{"Pending", "Active", "Completed", "Skipped"},
						},
					},
				},
			},
		},

		// MTOs
		{
			Name:        "create_mto",
			Description: "Create a material take-off, optionally seeded from an NMR document's line items",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"number": map[string]any{
						"type":        "string",
						"description": "MTO number (auto-generated when omitted)",
					},
					"project_id": map[string]any{
						"type":        "string",
						"description": "Parent project ID",
					},
					"po_id": map[string]any{
						"type":        "string",
						"description": "Related purchase order ID",
					},
					"nmr_document_id": map[string]any{
						"type":        "string",
						"description": "NMR document to seed materials from",
					},
					"line_item_materials": map[string]any{
						"type":        "object",
						"description": "Map of line item ID to material description",
						"additionalProperties": map[string]any{
							"type": "string",
						},
					},
				},
				"required": []string{"project_id"},
			},
		},
		{
			Name:        "update_mto",
			Description: "Update a material take-off's number or materials",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "MTO ID",
					},
					"number": map[string]any{"type": "string"},
					"line_item_materials": map[string]any{
						"type":        "object",
						"description": "Replacement map of line item ID to material description",
						"additionalProperties": map[string]any{
							"type": "string",
						},
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_mto",
			Description: "Delete a material take-off",
			InputSchema: idOnlySchema("MTO ID"),
		},
		{
			Name:        "get_mto",
			Description: "Get details for a specific material take-off",
			InputSchema: idOnlySchema("MTO ID"),
		},
		{
			Name:        "list_mtos",
			Description: "List material take-offs with optional filters",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Filter by project ID",
					},
					"po_id": map[string]any{
						"type":        "string",
						"description": "Filter by purchase order ID",
					},
					"nmr_id": map[string]any{
						"type":        "string",
						"description": "Filter by source NMR document ID",
					},
				},
			},
		},

		// Master data
		{
			Name:        "upsert_customer",
			Description: "Create or update a customer master record",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Customer ID (omit to create)",
					},
					"name":     map[string]any{"type": "string"},
					"industry": map[string]any{"type": "string"},
					"country":  map[string]any{"type": "string"},
					"phone":    map[string]any{"type": "string"},
					"email":    map[string]any{"type": "string"},
					"division": map[string]any{"type": "string"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "delete_customer",
			Description: "Delete a customer master record",
			InputSchema: idOnlySchema("Customer ID"),
		},
		{
			Name:        "list_customers",
			Description: "List all customer master records",
			InputSchema: emptySchema(),
		},
		{
			Name:        "upsert_vendor",
			Description: "Create or update a vendor master record",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Vendor ID (omit to create)",
					},
					"name":           map[string]any{"type": "string"},
					"category":       map[string]any{"type": "string"},
					"contact_person": map[string]any{"type": "string"},
					"phone":          map[string]any{"type": "string"},
					"email":          map[string]any{"type": "string"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "delete_vendor",
			Description: "Delete a vendor master record",
			InputSchema: idOnlySchema("Vendor ID"),
		},
		{
			Name:        "list_vendors",
			Description: "List all vendor master records",
			InputSchema: emptySchema(),
		},
		{
			Name:        "upsert_product",
			Description: "Create or update a product master record",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Product ID (omit to create)",
					},
					"code":     map[string]any{"type": "string"},
					"name":     map[string]any{"type": "string"},
					"category": map[string]any{"type": "string"},
					"uom":      map[string]any{"type": "string"},
				},
				"required": []string{"code", "name"},
			},
		},
		{
			Name:        "delete_product",
			Description: "Delete a product master record",
			InputSchema: idOnlySchema("Product ID"),
		},
		{
			Name:        "list_products",
			Description: "List all product master records",
			InputSchema: emptySchema(),
		},
		{
			Name:        "upsert_workstation",
			Description: "Create or update a workstation master record",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Workstation ID (omit to create)",
					},
					"name":   map[string]any{"type": "string"},
					"type":   map[string]any{"type": "string"},
					"status": map[string]any{"type": "string"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "delete_workstation",
			Description: "Delete a workstation master record",
			InputSchema: idOnlySchema("Workstation ID"),
		},
		{
			Name:        "list_workstations",
			Description: "List all workstation master records",
			InputSchema: emptySchema(),
		},

		// Activity
		{
			Name:        "get_recent_activity",
			Description: "Get recent activity log entries, newest first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"entity_id": map[string]any{
						"type":        "string",
						"description": "Filter by affected entity ID",
					},
					"types": map[string]any{
						"type":        "array",
						"description": "Filter by activity type",
						"items":       map[string]any{"type": "string"},
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of entries",
					},
				},
			},
		},

		// Snapshots
		{
			Name:        "export_state",
			Description: "Export the entire store as one JSON snapshot document",
			InputSchema: emptySchema(),
		},
		{
			Name:        "import_state",
			Description: "Replace the entire store with a previously exported snapshot; existing data is wiped first",
			InputSchema: map[string]any{
				"type":                 "object",
				"description":          "A snapshot document as produced by export_state",
				"properties":           map[string]any{},
				"additionalProperties": true,
			},
		},
	}
}
