package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/sqlite"
)

// Handler dispatches MCP tool calls to domain services.
type Handler struct {
	svc Services
}

// NewHandler creates a new MCP handler.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches MCP requests to domain services.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.svc.Projects.Create(ctx, project.CreateRequest{
			Name:        req.Name,
			ProjectType: req.ProjectType,
			Date:        req.Date,
			Plant:       req.Plant,
			Customer:    req.Customer,
			EndUser:     req.EndUser,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "update_project":
		var req UpdateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.svc.Projects.Update(ctx, project.UpdateRequest{
			ID:          req.ID,
			Name:        req.Name,
			ProjectType: req.ProjectType,
			Date:        req.Date,
			Plant:       req.Plant,
			Customer:    req.Customer,
			EndUser:     req.EndUser,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "delete_project":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Projects.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "get_project":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.svc.Projects.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "list_projects":
		projects, err := h.svc.Projects.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return projects, nil

	case "create_purchase_order":
		var req CreatePurchaseOrderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		po, err := h.svc.Orders.CreatePurchaseOrder(ctx, order.CreatePORequest{
			ProjectID:       req.ProjectID,
			PONumber:        req.PONumber,
			PODate:          req.PODate,
			PORev:           req.PORev,
			POTags:          req.POTags,
			BankAssignments: req.BankAssignments,
			Contacts:        req.Contacts,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return po, nil
	case "update_purchase_order":
		var req UpdatePurchaseOrderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		po, err := h.svc.Orders.UpdatePurchaseOrder(ctx, order.UpdatePORequest{
			ID:              req.ID,
			PONumber:        req.PONumber,
			PODate:          req.PODate,
			PORev:           req.PORev,
			POTags:          req.POTags,
			BankAssignments: req.BankAssignments,
			Contacts:        req.Contacts,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return po, nil
	case "delete_purchase_order":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Orders.DeletePurchaseOrder(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "get_purchase_order":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		po, err := h.svc.Orders.GetPurchaseOrder(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return po, nil
	case "list_purchase_orders":
		var req ListPurchaseOrdersParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		pos, err := h.svc.Orders.ListPurchaseOrders(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return pos, nil

	case "create_line_items":
		var req CreateLineItemsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		reqs := make([]order.LineItemRequest, 0, len(req.Items))
		for _, item := range req.Items {
			price, err := parseUnitPrice(item.UnitPrice)
			if err != nil {
				return nil, fmt.Errorf("invalid unit_price %q: %w", item.UnitPrice, err)
			}
			reqs = append(reqs, order.LineItemRequest{
				POID:                   item.POID,
				ProjectID:              item.ProjectID,
				ItemCategory:           item.ItemCategory,
				CustomerMaterialNumber: item.CustomerMaterialNumber,
				Description:            item.Description,
				Quantity:               item.Quantity,
				PipeLength:             item.PipeLength,
				UOM:                    item.UOM,
				DeliveryDate:           item.DeliveryDate,
				DrawingNo:              item.DrawingNo,
				DrawingRev:             item.DrawingRev,
				Size:                   item.Size,
				WT:                     item.WT,
				MaterialGrade:          item.MaterialGrade,
				CRAMaterial:            item.CRAMaterial,
				OverlayThickness:       item.OverlayThickness,
				HydrotestPressure:      item.HydrotestPressure,
				PaintingSpec:           item.PaintingSpec,
				WPSNumber:              item.WPSNumber,
				RefITPNumber:           item.RefITPNumber,
				UnitPrice:              price,
				Currency:               item.Currency,
			})
		}
		batch, err := h.svc.Orders.CreateLineItems(ctx, reqs)
		if err != nil {
			return nil, mapError(err)
		}
		return BatchCreateResponse{LineItems: batch.LineItems, Spools: batch.Spools}, nil
	case "update_line_item":
		var req UpdateLineItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		update := order.UpdateLineItemRequest{
			ID:                     req.ID,
			ItemCategory:           req.ItemCategory,
			CustomerMaterialNumber: req.CustomerMaterialNumber,
			Description:            req.Description,
			Quantity:               req.Quantity,
			PipeLength:             req.PipeLength,
			UOM:                    req.UOM,
			DeliveryDate:           req.DeliveryDate,
			DrawingNo:              req.DrawingNo,
			DrawingRev:             req.DrawingRev,
			Size:                   req.Size,
			WT:                     req.WT,
			MaterialGrade:          req.MaterialGrade,
			CRAMaterial:            req.CRAMaterial,
			OverlayThickness:       req.OverlayThickness,
			HydrotestPressure:      req.HydrotestPressure,
			PaintingSpec:           req.PaintingSpec,
			WPSNumber:              req.WPSNumber,
			RefITPNumber:           req.RefITPNumber,
			Currency:               req.Currency,
		}
		if req.UnitPrice != nil {
			price, err := parseUnitPrice(*req.UnitPrice)
			if err != nil {
				return nil, fmt.Errorf("invalid unit_price %q: %w", *req.UnitPrice, err)
			}
			update.UnitPrice = &price
		}
		li, err := h.svc.Orders.UpdateLineItem(ctx, update)
		if err != nil {
			return nil, mapError(err)
		}
		return li, nil
	case "delete_line_item":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Orders.DeleteLineItem(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "get_line_item":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		li, err := h.svc.Orders.GetLineItem(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return li, nil
	case "list_line_items":
		var req ListLineItemsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		items, err := h.svc.Orders.ListLineItems(ctx, order.ListLineItemsOptions{
			ProjectID: req.ProjectID,
			POID:      req.POID,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return items, nil

	case "get_spool":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sp, err := h.svc.Spools.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return sp, nil
	case "list_spools":
		var req ListSpoolsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		spools, err := h.svc.Spools.List(ctx, spool.ListOptions{
			ProjectID:     req.ProjectID,
			POID:          req.POID,
			LineItemID:    req.LineItemID,
			Status:        spool.Status(req.Status),
			SageCodedOnly: req.SageCodedOnly,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return spools, nil
	case "update_spool":
		var req UpdateSpoolParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sp, err := h.svc.Spools.Update(ctx, spool.UpdateRequest{
			ID:                 req.ID,
			HeatNumber:         req.HeatNumber,
			CuttingSheetNumber: req.CuttingSheetNumber,
			MTRNumber:          req.MTRNumber,
			MINNumber:          req.MINNumber,
			Description:        req.Description,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return sp, nil
	case "delete_spool":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Spools.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "complete_cladding":
		var req CompleteCladdingParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sageCode, err := h.svc.Spools.CompleteCladding(ctx, req.SpoolID)
		if err != nil {
			return nil, mapError(err)
		}
		return CompleteCladdingResponse{
			SpoolID:  req.SpoolID,
			SageCode: sageCode,
			Status:   string(spool.StatusCladdedReadyForAssembly),
		}, nil

	case "create_assembly_joint":
		var req CreateAssemblyJointParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		joint, err := h.svc.Assemblies.Create(ctx, assembly.CreateRequest{
			Component1: req.Component1,
			Component2: req.Component2,
			Size:       req.Size,
			WT:         req.WT,
			Sequence:   req.Sequence,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return joint, nil
	case "update_assembly_joint":
		var req UpdateAssemblyJointParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		joint, err := h.svc.Assemblies.Update(ctx, assembly.UpdateRequest{
			ID:         req.ID,
			Component1: req.Component1,
			Component2: req.Component2,
			Size:       req.Size,
			WT:         req.WT,
			Sequence:   req.Sequence,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return joint, nil
	case "delete_assembly_joint":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Assemblies.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "get_assembly_joint":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		joint, err := h.svc.Assemblies.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return joint, nil
	case "list_assembly_joints":
		joints, err := h.svc.Assemblies.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return joints, nil

	case "create_nmr":
		var req CreateNMRParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.Create(ctx, nmr.CreateRequest{
			ProjectID:       req.ProjectID,
			POID:            req.POID,
			DrawingNumber:   req.DrawingNumber,
			DrawingRevision: req.DrawingRevision,
			DrawingTitle:    req.DrawingTitle,
			Spec:            req.Spec,
			Remarks:         req.Remarks,
			LineItems:       req.LineItems,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "update_nmr":
		var req UpdateNMRParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.Update(ctx, nmr.UpdateRequest{
			ID:              req.ID,
			DrawingNumber:   req.DrawingNumber,
			DrawingRevision: req.DrawingRevision,
			DrawingTitle:    req.DrawingTitle,
			Spec:            req.Spec,
			Remarks:         req.Remarks,
			LineItems:       req.LineItems,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "delete_nmr":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.NMRs.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "get_nmr":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "list_nmrs":
		var req ListNMRsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		docs, err := h.svc.NMRs.List(ctx, nmr.ListOptions{
			ProjectID: req.ProjectID,
			POID:      req.POID,
			Statuses:  req.Statuses,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return docs, nil
	case "submit_nmr":
		var req SubmitNMRParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.SubmitForReview(ctx, req.ID, req.SubmissionDate)
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "record_nmr_response":
		var req NMRResponseParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.RecordClientResponse(ctx, req.ID, nmr.ResponseRequest{
			Code:       req.Code,
			ReturnDate: req.ReturnDate,
			Comment:    req.Comment,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "submit_nmr_rev0":
		var req SubmitNMRParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.SubmitRev0(ctx, req.ID, req.SubmissionDate)
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil
	case "reset_nmr_to_draft":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		doc, err := h.svc.NMRs.ResetToDraft(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return doc, nil

	case "ensure_jis_routing":
		var req EnsureJISRoutingParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		ops, err := h.svc.Quality.EnsureRouting(ctx, req.SpoolID)
		if err != nil {
			return nil, mapError(err)
		}
		return ops, nil
	case "record_jis_action":
		var req RecordJISActionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		op, err := h.svc.Quality.RecordAction(ctx, req.OperationID, quality.Action(req.Action), req.InspectorID)
		if err != nil {
			return nil, mapError(err)
		}
		return op, nil
	case "add_jis_operation":
		var req AddJISOperationParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		op, err := h.svc.Quality.AddOperation(ctx, quality.AddOperationRequest{
			TargetID:    req.TargetID,
			ProcessName: req.ProcessName,
			Description: req.Description,
			Sequence:    req.Sequence,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return op, nil
	case "update_jis_operation":
		var req UpdateJISOperationParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		op, err := h.svc.Quality.UpdateOperation(ctx, quality.UpdateOperationRequest{
			ID:          req.ID,
			ProcessName: req.ProcessName,
			Description: req.Description,
			Sequence:    req.Sequence,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return op, nil
	case "delete_jis_operation":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Quality.DeleteOperation(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "list_jis_operations":
		var req ListJISOperationsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		ops, err := h.svc.Quality.List(ctx, quality.ListOptions{
			TargetID: req.TargetID,
			Statuses: req.Statuses,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return ops, nil

	case "create_mto":
		var req CreateMTOParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		m, err := h.svc.MTOs.Create(ctx, mto.CreateRequest{
			Number:            req.Number,
			ProjectID:         req.ProjectID,
			POID:              req.POID,
			NMRDocumentID:     req.NMRDocumentID,
			LineItemMaterials: req.LineItemMaterials,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return m, nil
	case "update_mto":
		var req UpdateMTOParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		m, err := h.svc.MTOs.Update(ctx, mto.UpdateRequest{
			ID:                req.ID,
			Number:            req.Number,
			LineItemMaterials: req.LineItemMaterials,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return m, nil
	case "delete_mto":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.MTOs.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "get_mto":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		m, err := h.svc.MTOs.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return m, nil
	case "list_mtos":
		var req ListMTOsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		mtos, err := h.svc.MTOs.List(ctx, mto.ListOptions{
			ProjectID: req.ProjectID,
			POID:      req.POID,
			NMRID:     req.NMRID,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return mtos, nil

	case "upsert_customer":
		var req UpsertCustomerParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		c, err := h.svc.MasterData.UpsertCustomer(ctx, masterdata.Customer{
			ID:       req.ID,
			Name:     req.Name,
			Industry: req.Industry,
			Country:  req.Country,
			Phone:    req.Phone,
			Email:    req.Email,
			Division: req.Division,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil
	case "delete_customer":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.MasterData.DeleteCustomer(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "list_customers":
		customers, err := h.svc.MasterData.ListCustomers(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return customers, nil
	case "upsert_vendor":
		var req UpsertVendorParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		v, err := h.svc.MasterData.UpsertVendor(ctx, masterdata.Vendor{
			ID:            req.ID,
			Name:          req.Name,
			Category:      req.Category,
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
			Email:         req.Email,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return v, nil
	case "delete_vendor":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.MasterData.DeleteVendor(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "list_vendors":
		vendors, err := h.svc.MasterData.ListVendors(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return vendors, nil
	case "upsert_product":
		var req UpsertProductParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		p, err := h.svc.MasterData.UpsertProduct(ctx, masterdata.Product{
			ID:       req.ID,
			Code:     req.Code,
			Name:     req.Name,
			Category: req.Category,
			UOM:      req.UOM,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return p, nil
	case "delete_product":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.MasterData.DeleteProduct(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "list_products":
		products, err := h.svc.MasterData.ListProducts(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return products, nil
	case "upsert_workstation":
		var req UpsertWorkstationParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		w, err := h.svc.MasterData.UpsertWorkstation(ctx, masterdata.Workstation{
			ID:     req.ID,
			Name:   req.Name,
			Type:   req.Type,
			Status: req.Status,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return w, nil
	case "delete_workstation":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.MasterData.DeleteWorkstation(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "list_workstations":
		workstations, err := h.svc.MasterData.ListWorkstations(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return workstations, nil

	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		entries, err := h.svc.Activity.Recent(ctx, activity.ListOptions{
			EntityID: req.EntityID,
			Types:    req.Types,
			Limit:    req.Limit,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return entries, nil

	case "export_state":
		snap, err := h.svc.Snapshots.Export(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return snap, nil
	case "import_state":
		var snap sqlite.Snapshot
		if err := decodeParams(params, &snap); err != nil {
			return nil, err
		}
		if err := h.svc.Snapshots.Import(ctx, &snap); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "imported"}, nil

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
