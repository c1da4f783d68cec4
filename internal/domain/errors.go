package domain

import "errors"

var (
	ErrProviderNotFound     = errors.New("провайдер не найден")
	ErrAppointmentNotFound  = errors.New("запись на приём не найдена")
	ErrPolicyNotFound       = errors.New("полис не найден")
	ErrActionNotFound       = errors.New("обращение не найдено")
	ErrIllustrationNotFound = errors.New("иллюстрация не найдена")
	ErrValidation           = errors.New("некорректные данные")
)
