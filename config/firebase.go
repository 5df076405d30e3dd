package config

// FirebaseServiceAccountKeyPath points at the service-account JSON key used
// by the FCM messaging client.
var FirebaseServiceAccountKeyPath = "serviceAccountKey.json"
