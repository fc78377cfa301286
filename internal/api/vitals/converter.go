package vitals

import "github.com/matcare/pregnancy-backend/internal/entity"

func toHistoryEntry(reading *entity.VitalsReading) *entity.VitalsHistoryEntry {
	return &entity.VitalsHistoryEntry{
		VitalID:     reading.ID,
		BPSystolic:  reading.BPSystolic,
		BPDiastolic: reading.BPDiastolic,
		HeartRate:   reading.HeartRate,
		Glucose:     reading.Glucose,
		Hemoglobin:  reading.Hemoglobin,
		Weight:      reading.Weight,
		RecordedAt:  reading.RecordedAt,
	}
}
