package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `cladtrack tracks cladded pipe fabrication as Projects → Purchase Orders → Line Items → Spools.

Core concepts (keep this mental model small):
- Project: top-level container with a sequential ID (e.g. AS-CL-001).
- Purchase order: customer PO under a project; holds tags, bank assignments and contacts.
- Line item: one ordered position on a PO. Categories containing "Pipe" automatically
  derive spools: ceil(pipe_length / 12) pieces, each at most 12 m. Other categories
  derive one spool per unit of quantity.
- Spool: a physical pipe piece. Completing cladding issues its SAGE code and moves it to
  "Cladded - Ready for Assembly". SAGE codes are how downstream steps reference material.
- Assembly joint: welds two SAGE-coded components together.
- JIS routing: the quality inspection sequence for a cladded spool; inspectors START,
  FINISH or SKIP each operation in order.
- NMR document: drawing approval paperwork. Lifecycle: DRAFT → SUBMITTED → client code
  1 (PENDING-REV0 → Rev 0 → APPROVED), 2/3 (revision bump, resubmit) or 4/D (closed).
- MTO: material take-off, optionally seeded from an approved NMR document.

Rules of engagement (default workflow):
1) Set up: create_project, then create_purchase_order, then create_line_items in one batch.
2) Fabricate: spools appear automatically for pipe categories. Record heat numbers with
   update_spool, then complete_cladding to issue the SAGE code.
3) Inspect: ensure_jis_routing on each cladded spool, then record_jis_action per operation.
4) Assemble: create_assembly_joint using the SAGE codes of cladded components.
5) Approve drawings: create_nmr → submit_nmr → record_nmr_response; on code 1 finish with
   submit_nmr_rev0. Codes 2/3 bump the revision so you can edit and submit_nmr again.
6) Order material: create_mto, seeding from the NMR document where one exists.
7) Back up: export_state returns the whole store as one JSON document; import_state
   replaces the store with a previous export.

Docs (progressive disclosure):
- cladtrack://docs/index (what to read when)
- cladtrack://docs/concepts (glossary + invariants)
- cladtrack://docs/workflows/order-to-spool
- cladtrack://docs/workflows/nmr-lifecycle
- cladtrack://docs/workflows/quality-routing
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "cladtrack://docs/index",
		Name:        "docs_index",
		Title:       "cladtrack docs index",
		Description: "Entry point for agent-facing docs: what exists and what to read when.",
		Content: `# cladtrack: Agent Docs Index

Keep your baseline context small and load deeper docs only when needed.

## Quick start (no deep docs)

1. ` + "`list_projects`" + ` / ` + "`get_project`" + ` to orient.
2. ` + "`list_purchase_orders`" + ` and ` + "`list_line_items`" + ` to find the work in flight.
3. ` + "`list_spools`" + ` with ` + "`status`" + ` filters to see fabrication progress.
4. Mutate via the create/update tools; all writes land in the activity log
   (` + "`get_recent_activity`" + `).

## Docs (read on demand)

- ` + "`cladtrack://docs/concepts`" + ` — glossary + invariants (spool derivation, SAGE codes, locking).
- ` + "`cladtrack://docs/workflows/order-to-spool`" + ` — from PO entry to cladded spools.
- ` + "`cladtrack://docs/workflows/nmr-lifecycle`" + ` — drawing approval state machine.
- ` + "`cladtrack://docs/workflows/quality-routing`" + ` — JIS inspection sign-off.

## Capabilities & intentional limitations

- List tools return full result sets; pass filters to control token usage.
- ` + "`import_state`" + ` wipes the store before loading — export first if unsure.
`,
	},
	{
		URI:         "cladtrack://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Concepts and invariants",
		Description: "Glossary + invariant rules: spool derivation, SAGE codes, NMR locking.",
		Content: `# Concepts and invariants

## Glossary

- **Project**: top-level container with a sequential ID, e.g. ` + "`AS-CL-001`" + `.
- **Purchase order**: customer PO under a project.
- **Line item**: one ordered position. Numbered ` + "`LI-0001`" + `, ` + "`LI-0002`" + `, … from a shared counter.
- **Spool**: physical pipe piece derived from a pipe line item. ID ` + "`SP-<item>-<n>`" + `.
- **SAGE code**: the ERP material code issued when a spool completes cladding.
- **Assembly joint**: weld between two SAGE-coded components.
- **JIS operation**: one step in a spool's inspection routing.
- **NMR document**: drawing approval paperwork with a revision history.
- **MTO**: material take-off listing material per line item.

## Spool derivation

- Line items whose category contains ` + "`Pipe`" + ` (case-sensitive) derive spools from pipe length:
  ` + "`ceil(pipe_length / 12)`" + ` pieces; a zero or unset length legally yields none.
- All other categories yield one spool per unit of quantity.
- Editing a line item never regenerates its spools; to change the spool set, delete the
  line item and add it again.

## SAGE codes

- Minted by ` + "`complete_cladding`" + `; re-triggering is allowed and replaces the code with a
  fresh one, so downstream references should be rechecked after a re-clad.
- Assembly joints and JIS routings reference components by SAGE code, so cladding must
  complete before either step.

## NMR locking

- APPROVED, CODE-4 and CODE-D documents are locked: edits are rejected.
- ` + "`reset_nmr_to_draft`" + ` unlocks a document for rework.
- A line item can be linked to at most one NMR document at a time.
`,
	},
	{
		URI:         "cladtrack://docs/workflows/order-to-spool",
		Name:        "docs_workflow_order_to_spool",
		Title:       "Workflow: order to spool",
		Description: "Playbook from PO entry to cladded, SAGE-coded spools.",
		Content: `# Workflow: order to spool

## 1) Enter the order

- ` + "`create_project`" + ` (the sequential project ID is assigned automatically).
- ` + "`create_purchase_order`" + ` with the customer PO number.
- ` + "`create_line_items`" + ` with the full batch in one call — the batch is atomic, and
  pipe categories derive their spools immediately.

## 2) Fabricate

- ` + "`list_spools`" + ` with ` + "`status: \"Pending Cladding\"`" + ` to see the queue.
- ` + "`update_spool`" + ` to record heat number, cutting sheet, MTR and MIN as they become known.
- ` + "`complete_cladding`" + ` when the overlay is done; this issues the SAGE code.

## 3) Verify

- ` + "`list_spools`" + ` with ` + "`sage_coded_only: true`" + ` shows material ready for assembly.
- Spool sets are fixed at entry: quantity or length corrections mean deleting the line
  item and re-adding it, so get the batch right before fabrication starts.
`,
	},
	{
		URI:         "cladtrack://docs/workflows/nmr-lifecycle",
		Name:        "docs_workflow_nmr_lifecycle",
		Title:       "Workflow: NMR lifecycle",
		Description: "The drawing approval state machine and how to drive it.",
		Content: `# Workflow: NMR lifecycle

## States

` + "`DRAFT`" + ` → ` + "`SUBMITTED`" + ` → one of:

- code ` + "`1`" + `: ` + "`PENDING-REV0`" + ` — approved; issue Rev 0 via ` + "`submit_nmr_rev0`" + ` → ` + "`APPROVED`" + `.
- code ` + "`2`" + ` / ` + "`3`" + `: ` + "`CODE-2`" + ` / ` + "`CODE-3`" + ` — revision letter bumps (A → B → …); edit and ` + "`submit_nmr`" + ` again.
- code ` + "`4`" + ` / ` + "`D`" + `: ` + "`CODE-4`" + ` / ` + "`CODE-D`" + ` — closed and locked.

## Driving it

1) ` + "`create_nmr`" + ` with the drawing number and the line items it covers (each line item
   needs a ` + "`product_id`" + ` from the product master).
2) ` + "`submit_nmr`" + ` records the submission date and moves to SUBMITTED.
3) ` + "`record_nmr_response`" + ` with the client's code when the drawing comes back.
4) Repeat 2–3 for codes 2/3; finish with ` + "`submit_nmr_rev0`" + ` after code 1.

## Gotchas

- Drawing numbers are unique ignoring case and surrounding whitespace.
- Revision letters run A–Z; Z cannot be bumped further.
- A locked document rejects edits — ` + "`reset_nmr_to_draft`" + ` first if rework is genuinely needed.
`,
	},
	{
		URI:         "cladtrack://docs/workflows/quality-routing",
		Name:        "docs_workflow_quality_routing",
		Title:       "Workflow: quality routing",
		Description: "JIS inspection routing: building it and signing off operations.",
		Content: `# Workflow: quality routing

## Build the routing

` + "`ensure_jis_routing`" + ` on a cladded spool creates the standard inspection sequence if it
does not exist yet (idempotent — calling it again returns the existing routing). Spools
still pending cladding are rejected.

Add shop-specific steps with ` + "`add_jis_operation`" + `; reorder with ` + "`update_jis_operation`" + `.

## Sign off

Each operation takes inspector actions via ` + "`record_jis_action`" + `:

- ` + "`START`" + `: Pending → Active.
- ` + "`FINISH`" + `: Active → Completed.
- ` + "`SKIP`" + `: Pending → Skipped.

Every action requires an ` + "`inspector_id`" + `; the badge and timestamp are stored on the
operation.

## Monitor

` + "`list_jis_operations`" + ` filtered by ` + "`target_id`" + ` shows one routing; filter by
` + "`statuses: [\"Pending\", \"Active\"]`" + ` across targets for the open inspection workload.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
