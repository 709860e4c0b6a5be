package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb columns want "null", not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		Undone:      false,
		IsUndone:    false,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}

	return nil
}

// UndoLog reverses the change a log row recorded: deletes what a create
// made, restores the before-state of an update, recreates what a delete
// removed.
func UndoLog(logID uint, userID uint, userName string) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log not found: %w", err)
	}

	if log.IsUndone {
		return fmt.Errorf("this change has already been undone")
	}

	switch log.Action {
	case models.AuditActionCreate:
		if err := deleteEntity(log.EntityType, log.EntityID); err != nil {
			return fmt.Errorf("could not delete entity: %w", err)
		}

	case models.AuditActionUpdate:
		if err := restoreEntity(log.EntityType, log.EntityID, log.BeforeData); err != nil {
			return fmt.Errorf("could not restore entity: %w", err)
		}

	case models.AuditActionDelete:
		if err := recreateEntity(log.EntityType, log.BeforeData); err != nil {
			return fmt.Errorf("could not recreate entity: %w", err)
		}

	default:
		return fmt.Errorf("this action cannot be undone")
	}

	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = &userID
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("could not update log: %w", err)
	}

	undoLog := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Undone: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
		Undone:      true,
		IsUndone:    false,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("could not write undo log: %w", err)
	}

	return nil
}

func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case "trip":
		return database.DB.Delete(&models.Trip{}, "id = ?", entityID).Error
	case "payment":
		return database.DB.Delete(&models.Payment{}, "id = ?", entityID).Error
	case "advance":
		return database.DB.Delete(&models.Advance{}, "id = ?", entityID).Error
	case "daily_expense":
		return database.DB.Delete(&models.DailyExpense{}, "id = ?", entityID).Error
	case "ledger_entry":
		return database.DB.Delete(&models.LedgerEntry{}, "id = ?", entityID).Error
	case "rate_card":
		return database.DB.Delete(&models.RateCard{}, "id = ?", entityID).Error
	default:
		return fmt.Errorf("unknown entity type: %s", entityType)
	}
}

func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "trip":
		var trip models.Trip
		if err := json.Unmarshal([]byte(dataJSON), &trip); err != nil {
			return err
		}
		trip.ID = 0
		return database.DB.Create(&trip).Error

	case "payment":
		var payment models.Payment
		if err := json.Unmarshal([]byte(dataJSON), &payment); err != nil {
			return err
		}
		payment.ID = 0
		return database.DB.Create(&payment).Error

	case "advance":
		var advance models.Advance
		if err := json.Unmarshal([]byte(dataJSON), &advance); err != nil {
			return err
		}
		advance.ID = 0
		return database.DB.Create(&advance).Error

	case "daily_expense":
		var expense models.DailyExpense
		if err := json.Unmarshal([]byte(dataJSON), &expense); err != nil {
			return err
		}
		expense.ID = 0
		return database.DB.Create(&expense).Error

	case "ledger_entry":
		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(dataJSON), &entry); err != nil {
			return err
		}
		entry.ID = 0
		return database.DB.Create(&entry).Error

	case "rate_card":
		var card models.RateCard
		if err := json.Unmarshal([]byte(dataJSON), &card); err != nil {
			return err
		}
		card.ID = 0
		return database.DB.Create(&card).Error

	default:
		return fmt.Errorf("unknown entity type: %s", entityType)
	}
}

func restoreEntity(entityType string, entityID uint, dataJSON string) error {
	switch entityType {
	case "trip":
		var trip models.Trip
		if err := json.Unmarshal([]byte(dataJSON), &trip); err != nil {
			return err
		}
		return database.DB.Model(&models.Trip{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"date":               trip.Date,
			"customer":           trip.Customer,
			"quarry_name":        trip.QuarryName,
			"transporter_name":   trip.TransporterName,
			"royalty_owner_name": trip.RoyaltyOwnerName,
			"vehicle_no":         trip.VehicleNo,
			"material":           trip.Material,
			"tonnage":            trip.Tonnage,
			"net_weight":         trip.NetWeight,
			"revenue":            trip.Revenue,
			"material_cost":      trip.MaterialCost,
			"transport_cost":     trip.TransportCost,
			"royalty_cost":       trip.RoyaltyCost,
		}).Error

	case "payment":
		var payment models.Payment
		if err := json.Unmarshal([]byte(dataJSON), &payment); err != nil {
			return err
		}
		return database.DB.Model(&models.Payment{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"type":            payment.Type,
			"amount":          payment.Amount,
			"date":            payment.Date,
			"rate_party_type": payment.RatePartyType,
			"rate_party_id":   payment.RatePartyID,
			"method":          payment.Method,
			"description":     payment.Description,
		}).Error

	case "advance":
		var advance models.Advance
		if err := json.Unmarshal([]byte(dataJSON), &advance); err != nil {
			return err
		}
		return database.DB.Model(&models.Advance{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"trip_id":         advance.TripID,
			"rate_party_type": advance.RatePartyType,
			"rate_party_id":   advance.RatePartyID,
			"amount":          advance.Amount,
			"date":            advance.Date,
			"description":     advance.Description,
		}).Error

	case "daily_expense":
		var expense models.DailyExpense
		if err := json.Unmarshal([]byte(dataJSON), &expense); err != nil {
			return err
		}
		return database.DB.Model(&models.DailyExpense{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"type":            expense.Type,
			"rate_party_type": expense.RatePartyType,
			"rate_party_id":   expense.RatePartyID,
			"amount":          expense.Amount,
			"date":            expense.Date,
			"description":     expense.Description,
		}).Error

	case "ledger_entry":
		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(dataJSON), &entry); err != nil {
			return err
		}
		return database.DB.Model(&models.LedgerEntry{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"from_account": entry.FromAccount,
			"to_account":   entry.ToAccount,
			"type":         entry.Type,
			"amount":       entry.Amount,
			"date":         entry.Date,
			"description":  entry.Description,
		}).Error

	case "rate_card":
		var card models.RateCard
		if err := json.Unmarshal([]byte(dataJSON), &card); err != nil {
			return err
		}
		return database.DB.Model(&models.RateCard{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"party_type":     card.PartyType,
			"party_id":       card.PartyID,
			"material_id":    card.MaterialID,
			"rate_per_ton":   card.RatePerTon,
			"effective_from": card.EffectiveFrom,
			"effective_to":   card.EffectiveTo,
		}).Error

	default:
		return fmt.Errorf("unknown entity type: %s", entityType)
	}
}
