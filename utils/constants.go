// File: utils/constants.go
package utils

// WizardSessionPrefix is the prefix used for Redis booking wizard session keys.
const WizardSessionPrefix = "wizardSession:"

// AdminSessionPrefix is the prefix used for Redis admin session keys.
const AdminSessionPrefix = "adminSession:"

// BookingsKey is the Redis key holding the serialized booking collection.
const BookingsKey = "shotz_bookings"
